// Package catalog holds the immutable game content tables: rarity tiers,
// item pools, market items, coin packs, auras, game passes, achievements,
// prestige upgrades and the daily reward schedule. Everything here is
// read-only after init; mutable player progress lives in models.PlayerState.
package catalog

type Rarity string

const (
	RarityCommon      Rarity = "common"
	RarityRare        Rarity = "rare"
	RarityMythical    Rarity = "mythical"
	RarityLegendary   Rarity = "legendary"
	RaritySubReborn   Rarity = "sub-reborn"
	RarityGrandmaster Rarity = "grandmaster"
)

type RarityInfo struct {
	Chance     int     `json:"chance"` // draw weight out of 100
	Color      string  `json:"color"`
	Multiplier float64 `json:"multiplier"`
}

// RarityOrder is the draw order; weights are cumulative in this order.
var RarityOrder = []Rarity{
	RarityCommon,
	RarityRare,
	RarityMythical,
	RarityLegendary,
	RaritySubReborn,
	RarityGrandmaster,
}

var Rarities = map[Rarity]RarityInfo{
	RarityCommon:      {Chance: 50, Color: "#969696", Multiplier: 1},
	RarityRare:        {Chance: 25, Color: "#0096FF", Multiplier: 2},
	RarityMythical:    {Chance: 15, Color: "#9400D3", Multiplier: 3},
	RarityLegendary:   {Chance: 5, Color: "#FFD700", Multiplier: 4},
	RaritySubReborn:   {Chance: 4, Color: "#FF4500", Multiplier: 5},
	RarityGrandmaster: {Chance: 1, Color: "#00FF00", Multiplier: 10},
}

type Item struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Icon  string `json:"icon"`
}

var ItemsByRarity = map[Rarity][]Item{
	RarityCommon: {
		{Name: "Wooden Sword", Value: 10000, Icon: "🗡️"},
		{Name: "Leather Armor", Value: 15000, Icon: "🥋"},
		{Name: "Basic Shield", Value: 12000, Icon: "🛡️"},
		{Name: "Training Boots", Value: 8000, Icon: "👢"},
		{Name: "Simple Potion", Value: 5000, Icon: "🧪"},
	},
	RarityRare: {
		{Name: "Iron Sword", Value: 30000, Icon: "⚔️"},
		{Name: "Chain Mail", Value: 40000, Icon: "🔗"},
		{Name: "Steel Shield", Value: 35000, Icon: "🛡️"},
		{Name: "Swift Boots", Value: 25000, Icon: "👢"},
		{Name: "Health Potion", Value: 20000, Icon: "🧪"},
	},
	RarityMythical: {
		{Name: "Dragon Sword", Value: 100000, Icon: "🐉"},
		{Name: "Dragon Scale Armor", Value: 120000, Icon: "🐲"},
		{Name: "Dragon Shield", Value: 110000, Icon: "🛡️"},
		{Name: "Dragon Boots", Value: 90000, Icon: "👢"},
		{Name: "Dragon Blood", Value: 80000, Icon: "🧪"},
	},
	RarityLegendary: {
		{Name: "Excalibur", Value: 300000, Icon: "⚔️"},
		{Name: "God Armor", Value: 350000, Icon: "👑"},
		{Name: "Aegis Shield", Value: 320000, Icon: "🛡️"},
		{Name: "Hermes Boots", Value: 280000, Icon: "👢"},
		{Name: "Ambrosia", Value: 250000, Icon: "🧪"},
	},
	RaritySubReborn: {
		{Name: "Void Blade", Value: 800000, Icon: "🌌"},
		{Name: "Void Armor", Value: 900000, Icon: "🌠"},
		{Name: "Void Shield", Value: 850000, Icon: "🛡️"},
		{Name: "Void Boots", Value: 750000, Icon: "👢"},
		{Name: "Void Essence", Value: 700000, Icon: "🧪"},
	},
	RarityGrandmaster: {
		{Name: "Infinity Blade", Value: 2000000, Icon: "∞"},
		{Name: "Infinity Armor", Value: 2500000, Icon: "🌟"},
		{Name: "Infinity Shield", Value: 2200000, Icon: "🛡️"},
		{Name: "Infinity Boots", Value: 1800000, Icon: "👢"},
		{Name: "Infinity Potion", Value: 1500000, Icon: "🧪"},
	},
}

// FindItem looks an item up by rarity and name. The bool reports whether
// the catalog knows the item.
func FindItem(rarity Rarity, name string) (Item, bool) {
	for _, item := range ItemsByRarity[rarity] {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

type MarketItemID string

const (
	MarketBoot       MarketItemID = "boot"
	MarketEmerald    MarketItemID = "emerald"
	MarketLuckyCharm MarketItemID = "lucky_charm"
)

type MarketItem struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	BasePrice     int64  `json:"base_price"`
	InitialSupply int64  `json:"initial_supply"`
	Icon          string `json:"icon"`
}

var MarketItems = map[MarketItemID]MarketItem{
	MarketBoot: {
		Name:          "Boot",
		Description:   "A mysterious boot with no apparent use... yet.",
		BasePrice:     1000000,
		InitialSupply: 1000000,
		Icon:          "👢",
	},
	MarketEmerald: {
		Name:          "Emerald",
		Description:   "A precious gem used in special events.",
		BasePrice:     4500000,
		InitialSupply: 1000000,
		Icon:          "💎",
	},
	MarketLuckyCharm: {
		Name:          "Lucky Charm",
		Description:   "Increases your chances of getting better numbers.",
		BasePrice:     5000000,
		InitialSupply: 1000000,
		Icon:          "🍀",
	},
}

type PackID string

const (
	PackStarter  PackID = "starter_pack"
	PackMedium   PackID = "medium_pack"
	PackMega     PackID = "mega_pack"
	PackUltra    PackID = "ultra_pack"
	PackUltimate PackID = "ultimate_pack"
)

type CoinPack struct {
	Name      string `json:"name"`
	Coins     int64  `json:"coins"`
	RealPrice string `json:"real_price"`
}

var CoinPacks = map[PackID]CoinPack{
	PackStarter:  {Name: "Starter Pack", Coins: 1000, RealPrice: "4.99"},
	PackMedium:   {Name: "Medium Pack", Coins: 5000, RealPrice: "9.99"},
	PackMega:     {Name: "Mega Pack", Coins: 12000, RealPrice: "19.99"},
	PackUltra:    {Name: "Ultra Pack", Coins: 25000, RealPrice: "49.99"},
	PackUltimate: {Name: "Ultimate Pack", Coins: 2000000, RealPrice: "99.99"},
}
