package catalog

type AchievementID string

const (
	AchRolls100     AchievementID = "rolls_100"
	AchRolls1000    AchievementID = "rolls_1000"
	AchRolls10000   AchievementID = "rolls_10000"
	AchBest1000     AchievementID = "best_1000"
	AchBest10000    AchievementID = "best_10000"
	AchBest100000   AchievementID = "best_100000"
	AchBest1000000  AchievementID = "best_1000000"
	AchCoins10000   AchievementID = "coins_10000"
	AchCoins100000  AchievementID = "coins_100000"
	AchCoins1000000 AchievementID = "coins_1000000"
	AchAllAuras     AchievementID = "all_auras"
	AchAllPasses    AchievementID = "all_passes"
)

type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
	Icon        string `json:"icon"`
}

var Achievements = map[AchievementID]Achievement{
	AchRolls100:     {Name: "Rolling Beginner", Description: "Roll 100 times", Reward: 1000000, Icon: "🎲"},
	AchRolls1000:    {Name: "Rolling Enthusiast", Description: "Roll 1,000 times", Reward: 5000000, Icon: "🎲"},
	AchRolls10000:   {Name: "Rolling Master", Description: "Roll 10,000 times", Reward: 20000000, Icon: "🎲"},
	AchBest1000:     {Name: "Lucky One", Description: "Get a roll of 1/1,000 or better", Reward: 5000000, Icon: "🍀"},
	AchBest10000:    {Name: "Super Lucky", Description: "Get a roll of 1/10,000 or better", Reward: 15000000, Icon: "🍀"},
	AchBest100000:   {Name: "Extremely Lucky", Description: "Get a roll of 1/100,000 or better", Reward: 50000000, Icon: "🍀"},
	AchBest1000000:  {Name: "Legendary Luck", Description: "Get a roll of 1/1,000,000 or better", Reward: 200000000, Icon: "🍀"},
	AchCoins10000:   {Name: "Small Fortune", Description: "Accumulate 10,000 coins", Reward: 5000000, Icon: "💰"},
	AchCoins100000:  {Name: "Medium Fortune", Description: "Accumulate 100,000 coins", Reward: 20000000, Icon: "💰"},
	AchCoins1000000: {Name: "Large Fortune", Description: "Accumulate 1,000,000 coins", Reward: 100000000, Icon: "💰"},
	AchAllAuras:     {Name: "Aura Collector", Description: "Own all auras at least once", Reward: 50000000, Icon: "✨"},
	AchAllPasses:    {Name: "Premium Player", Description: "Own all game passes", Reward: 100000000, Icon: "👑"},
}

type UpgradeID string

const (
	UpgradeCoinMultiplier UpgradeID = "coin_multiplier"
	UpgradeLuckBoost      UpgradeID = "luck_boost"
	UpgradeLimitIncrease  UpgradeID = "limit_increase"
)

type PrestigeUpgrade struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        int64   `json:"cost"` // level n costs Cost * (n+1)
	Effect      float64 `json:"effect"`
	MaxLevel    int     `json:"max_level"`
}

var PrestigeUpgrades = map[UpgradeID]PrestigeUpgrade{
	UpgradeCoinMultiplier: {
		Name:        "Coin Multiplier",
		Description: "Increase coin earnings by 10%",
		Cost:        50000000,
		Effect:      0.1,
		MaxLevel:    10,
	},
	UpgradeLuckBoost: {
		Name:        "Luck Boost",
		Description: "Increase your luck by 5%",
		Cost:        100000000,
		Effect:      0.05,
		MaxLevel:    5,
	},
	UpgradeLimitIncrease: {
		Name:        "Limit Increase",
		Description: "Increase your number limit by 50M",
		Cost:        200000000,
		Effect:      50000000,
		MaxLevel:    10,
	},
}

type DailyReward struct {
	Day   int    `json:"day"`
	Coins int64  `json:"coins"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
}

// DailyRewards is indexed directly by the streak counter, which stays in [0, 7).
var DailyRewards = [7]DailyReward{
	{Day: 1, Coins: 100000, Name: "Day 1", Icon: "🎁"},
	{Day: 2, Coins: 200000, Name: "Day 2", Icon: "🎁"},
	{Day: 3, Coins: 300000, Name: "Day 3", Icon: "🎁"},
	{Day: 4, Coins: 400000, Name: "Day 4", Icon: "🎁"},
	{Day: 5, Coins: 500000, Name: "Day 5", Icon: "🎁"},
	{Day: 6, Coins: 600000, Name: "Day 6", Icon: "🎁"},
	{Day: 7, Coins: 1000000, Name: "Day 7", Icon: "🌟"},
}
