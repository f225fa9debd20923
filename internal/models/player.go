package models

import (
	"luckroll-backend/internal/catalog"
)

// PlayerState is the single root document the engine owns between load and
// save. Every economy operation computes a complete next state before the
// gateway writes anything.
type PlayerState struct {
	Coins int64 `json:"coins"`
	Stats Stats `json:"stats"`

	// Inventory holds gacha items grouped by rarity; market purchases are
	// tracked as counts per item id since those items are fungible.
	Inventory      map[catalog.Rarity][]OwnedItem     `json:"inventory"`
	MarketHoldings map[catalog.MarketItemID]int64     `json:"market_holdings"`
	ActiveAuras    []ActiveAura                       `json:"active_auras"`
	GamePasses     map[catalog.PassID]bool            `json:"game_passes"`

	AutoGenerateActive bool  `json:"auto_generate_active"`
	NumberLimit        int64 `json:"number_limit"`

	Prestige     PrestigeState    `json:"prestige"`
	DailyRewards DailyLedger      `json:"daily_rewards"`
	Achievements AchievementState `json:"achievements"`

	Market        map[catalog.MarketItemID]MarketEntry `json:"market"`
	TargetNumbers TargetNumbers                        `json:"target_numbers"`
}

type Stats struct {
	TotalRolls   int64 `json:"total_rolls"`
	TotalNumbers int64 `json:"total_numbers"`
	BestNumber   int64 `json:"best_number"`
}

type OwnedItem struct {
	Name   string         `json:"name"`
	Value  int64          `json:"value"`
	Icon   string         `json:"icon"`
	Rarity catalog.Rarity `json:"rarity"`
	Color  string         `json:"color"`
}

type ActiveAura struct {
	ID          catalog.AuraID `json:"id"`
	Name        string         `json:"name"`
	Effect      string         `json:"effect"`
	Duration    string         `json:"duration"`
	ActivatedAt int64          `json:"activated_at"` // unix seconds
}

type PrestigeState struct {
	Level       int                       `json:"level"`
	Multiplier  float64                   `json:"multiplier"`
	Points      int64                     `json:"points"`
	TotalResets int                       `json:"total_resets"`
	Upgrades    map[catalog.UpgradeID]int `json:"upgrades"`
}

type DailyLedger struct {
	LastClaim string `json:"last_claim"` // "2006-01-02", empty when never claimed
	Streak    int    `json:"streak"`     // always in [0, 7)
}

type AchievementState struct {
	Unlocked []catalog.AchievementID `json:"unlocked"`
}

func (a AchievementState) Has(id catalog.AchievementID) bool {
	for _, got := range a.Unlocked {
		if got == id {
			return true
		}
	}
	return false
}

type MarketEntry struct {
	Price  int64 `json:"price"`
	Supply int64 `json:"supply"`
}

// TargetNumbers are per-roll bonus thresholds: any roll at or above a
// threshold pays the matching bonus on top of the flat roll reward.
type TargetNumbers struct {
	Easy    int64         `json:"easy"`
	Medium  int64         `json:"medium"`
	Hard    int64         `json:"hard"`
	Rewards TargetRewards `json:"rewards"`
}

type TargetRewards struct {
	Easy   int64 `json:"easy"`
	Medium int64 `json:"medium"`
	Hard   int64 `json:"hard"`
}

const (
	StartingCoins      int64 = 1000
	StartingLimit      int64 = 1000000
	PrestigeResetLimit int64 = 985000000 // raised baseline after a prestige reset
)

// NewDefaultState synthesizes the documented default document. The gateway
// returns it when no prior state exists.
func NewDefaultState() *PlayerState {
	inventory := make(map[catalog.Rarity][]OwnedItem, len(catalog.RarityOrder))
	for _, rarity := range catalog.RarityOrder {
		inventory[rarity] = []OwnedItem{}
	}

	return &PlayerState{
		Coins:          StartingCoins,
		Stats:          Stats{},
		Inventory:      inventory,
		MarketHoldings: make(map[catalog.MarketItemID]int64),
		ActiveAuras:    []ActiveAura{},
		GamePasses: map[catalog.PassID]bool{
			catalog.PassTripleGenerate: false,
			catalog.PassDoubleLuck:     false,
			catalog.PassAutoGenerate:   false,
		},
		NumberLimit: StartingLimit,
		Prestige: PrestigeState{
			Level:      0,
			Multiplier: 1.0,
			Upgrades: map[catalog.UpgradeID]int{
				catalog.UpgradeCoinMultiplier: 0,
				catalog.UpgradeLuckBoost:      0,
				catalog.UpgradeLimitIncrease:  0,
			},
		},
		DailyRewards: DailyLedger{},
		Achievements: AchievementState{Unlocked: []catalog.AchievementID{}},
		Market:       make(map[catalog.MarketItemID]MarketEntry),
		TargetNumbers: TargetNumbers{
			Easy:   100000,
			Medium: 500000,
			Hard:   900000,
			Rewards: TargetRewards{
				Easy:   1000,
				Medium: 5000,
				Hard:   25000,
			},
		},
	}
}

// Normalize fills in maps and slices that older saved documents may lack,
// mirroring what the gateway did for hand-edited saves.
func (s *PlayerState) Normalize() {
	if s.Inventory == nil {
		s.Inventory = make(map[catalog.Rarity][]OwnedItem, len(catalog.RarityOrder))
	}
	for _, rarity := range catalog.RarityOrder {
		if _, ok := s.Inventory[rarity]; !ok {
			s.Inventory[rarity] = []OwnedItem{}
		}
	}
	if s.MarketHoldings == nil {
		s.MarketHoldings = make(map[catalog.MarketItemID]int64)
	}
	if s.ActiveAuras == nil {
		s.ActiveAuras = []ActiveAura{}
	}
	if s.GamePasses == nil {
		s.GamePasses = map[catalog.PassID]bool{
			catalog.PassTripleGenerate: false,
			catalog.PassDoubleLuck:     false,
			catalog.PassAutoGenerate:   false,
		}
	}
	if s.Prestige.Upgrades == nil {
		s.Prestige.Upgrades = map[catalog.UpgradeID]int{}
	}
	if s.Prestige.Multiplier < 1.0 {
		s.Prestige.Multiplier = 1.0
	}
	if s.Achievements.Unlocked == nil {
		s.Achievements.Unlocked = []catalog.AchievementID{}
	}
	if s.Market == nil {
		s.Market = make(map[catalog.MarketItemID]MarketEntry)
	}
	if s.TargetNumbers == (TargetNumbers{}) {
		s.TargetNumbers = NewDefaultState().TargetNumbers
	}
}
