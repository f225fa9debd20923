package models

import (
	"fmt"

	"luckroll-backend/internal/catalog"
)

type GambleRequest struct {
	BetAmount   int64  `json:"bet_amount" binding:"required"`
	TargetRange string `json:"target_range" binding:"required"`
}

func (r *GambleRequest) Validate() error {
	if r.BetAmount <= 0 {
		return fmt.Errorf("bet amount must be positive")
	}
	if _, _, err := ParseTargetRange(r.TargetRange); err != nil {
		return err
	}
	return nil
}

type BuyPackRequest struct {
	PackID catalog.PackID `json:"pack_id" binding:"required"`
}

type BuyAuraRequest struct {
	AuraID catalog.AuraID `json:"aura_id" binding:"required"`
}

type BuyPassRequest struct {
	PassID catalog.PassID `json:"pass_id" binding:"required"`
}

type BuyItemRequest struct {
	ItemID   catalog.MarketItemID `json:"item_id" binding:"required"`
	Quantity int64                `json:"quantity"`
}

type TradeRequest struct {
	ItemName string         `json:"item_name" binding:"required"`
	Rarity   catalog.Rarity `json:"rarity" binding:"required"`
	Amount   int64          `json:"amount" binding:"required"`
}

type BuyUpgradeRequest struct {
	UpgradeID catalog.UpgradeID `json:"upgrade_id" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminAmountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type AdminGiveItemRequest struct {
	ItemName string         `json:"item_name" binding:"required"`
	Rarity   catalog.Rarity `json:"rarity" binding:"required"`
	Amount   int64          `json:"amount"`
}

type AdminSetLevelRequest struct {
	Level int `json:"level"`
}

type AdminSetLimitRequest struct {
	Limit int64 `json:"limit" binding:"required"`
}

// RollResult is the per-roll outcome shared by generate and reroll.
type RollResult struct {
	BaseNumber         int64         `json:"base_number"`
	BoostedNumber      int64         `json:"boosted_number"`
	BaseProbability    float64       `json:"base_probability"`
	BoostedProbability float64       `json:"boosted_probability"`
	TargetRewards      []TargetBonus `json:"target_rewards,omitempty"`
}

type TargetBonus struct {
	Target string `json:"target"`
	Reward int64  `json:"reward"`
}

type GenerateResult struct {
	Rolls           []RollResult            `json:"rolls"` // one entry, or three with the triple pass
	Multiplier      float64                 `json:"multiplier"`
	Stats           Stats                   `json:"stats"`
	CoinsEarned     int64                   `json:"coins_earned"`
	NewBalance      int64                   `json:"new_balance"`
	NewAchievements []catalog.AchievementID `json:"new_achievements"`
	TripleGenerate  bool                    `json:"triple_generate"`
}

type RerollResult struct {
	Roll        RollResult `json:"roll"`
	Multiplier  float64    `json:"multiplier"`
	Stats       Stats      `json:"stats"`
	Improvement int64      `json:"improvement"`
	NewBalance  int64      `json:"new_balance"`
}

type GambleResult struct {
	Won        bool    `json:"won"`
	Number     int64   `json:"number"`
	Payout     int64   `json:"payout"` // net coins won or lost
	Multiplier float64 `json:"multiplier"`
	NewBalance int64   `json:"new_balance"`
}

type DrawResult struct {
	Item            OwnedItem               `json:"item"`
	NewBalance      int64                   `json:"new_balance"`
	Stats           Stats                   `json:"stats"`
	NewAchievements []catalog.AchievementID `json:"new_achievements"`
}

type PrestigeResult struct {
	PrestigePoints int64   `json:"prestige_points"`
	NewMultiplier  float64 `json:"new_multiplier"`
	PrestigeLevel  int     `json:"prestige_level"`
}

type PrestigeInfo struct {
	Level             int                       `json:"prestige_level"`
	CurrentMultiplier float64                   `json:"current_multiplier"`
	NextMultiplier    float64                   `json:"next_multiplier"`
	PendingPoints     int64                     `json:"prestige_points"`
	UpgradeLevels     map[catalog.UpgradeID]int `json:"upgrade_levels"`
}

type DailyStatus struct {
	CanClaim bool `json:"can_claim"`
	Streak   int  `json:"streak"`
}

type DailyClaimResult struct {
	Coins           int64                   `json:"coins"`
	RewardName      string                  `json:"reward_name"`
	Streak          int                     `json:"streak"`
	NewBalance      int64                   `json:"new_balance"`
	NewAchievements []catalog.AchievementID `json:"new_achievements"`
}

type MarketItemInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       int64  `json:"price"`
	Supply      int64  `json:"supply"`
	Owned       int64  `json:"owned"`
}

type PurchaseResult struct {
	NewBalance int64                                   `json:"new_balance"`
	Market     map[catalog.MarketItemID]MarketItemInfo `json:"market,omitempty"`
}

type TradeResult struct {
	CoinsCredited int64 `json:"coins_credited"`
	NewBalance    int64 `json:"new_balance"`
}

type AchievementView struct {
	ID          catalog.AchievementID `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Reward      int64                 `json:"reward"`
	Icon        string                `json:"icon"`
	Unlocked    bool                  `json:"unlocked"`
}
