package services

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/config"
	"luckroll-backend/internal/models"
)

const (
	RollReward     int64 = 200
	RerollCost     int64 = 5000
	DrawCost       int64 = 100
	GamblePayoutCap      = 100.0

	LimitIncreaseCost   int64 = 50000000
	LimitIncreaseAmount int64 = 100000000
)

// GameEngine runs every economy operation as an atomic read-modify-write on
// the single player document. The mutex serializes concurrent requests so a
// pair of racing operations can never lose an update.
type GameEngine struct {
	store StateStore

	mu  sync.Mutex
	rng *rand.Rand

	enforceAuraExpiry    bool
	keepPassesOnPrestige bool
}

func NewGameEngine(store StateStore, cfg *config.Config) *GameEngine {
	return &GameEngine{
		store:                store,
		rng:                  rand.New(rand.NewSource(time.Now().UnixNano())),
		enforceAuraExpiry:    cfg.EnforceAuraExpiry,
		keepPassesOnPrestige: cfg.KeepPassesOnPrestige,
	}
}

// withState loads the document, applies fn, and saves the result. A
// ValidationError from fn aborts before the write, leaving the stored
// document untouched. A failed save surfaces as a PersistenceError; the
// computed state is still returned to the caller.
func (ge *GameEngine) withState(fn func(state *models.PlayerState) error) (*models.PlayerState, error) {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	state, err := ge.store.LoadState()
	if err != nil {
		return nil, err
	}

	if err := fn(state); err != nil {
		return nil, err
	}

	if err := ge.store.SaveState(state); err != nil {
		return state, &PersistenceError{Err: err}
	}

	return state, nil
}

// State returns the current document without mutating it.
func (ge *GameEngine) State() (*models.PlayerState, error) {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.store.LoadState()
}

// GenerateNumber performs the main roll: one draw, or three with the triple
// generate pass. Every roll pays the flat reward plus any target-threshold
// bonuses; stats and achievements update from the base magnitude only.
func (ge *GameEngine) GenerateNumber() (*models.GenerateResult, error) {
	var result models.GenerateResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		if state.NumberLimit <= 0 {
			return validationErrorf("number limit must be positive")
		}

		multiplier := ComposeMultiplier(state, ge.enforceAuraExpiry, time.Now())

		rollCount := 1
		if state.GamePasses[catalog.PassTripleGenerate] {
			rollCount = 3
		}

		var coinsEarned int64
		rolls := make([]models.RollResult, 0, rollCount)
		for i := 0; i < rollCount; i++ {
			roll, earned := ge.rollOnce(state, multiplier)
			rolls = append(rolls, roll)
			coinsEarned += earned
		}

		newAchievements := EvaluateAchievements(state)

		result = models.GenerateResult{
			Rolls:           rolls,
			Multiplier:      multiplier,
			Stats:           state.Stats,
			CoinsEarned:     coinsEarned,
			NewBalance:      state.Coins,
			NewAchievements: newAchievements,
			TripleGenerate:  rollCount > 1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// rollOnce draws one base magnitude, updates stats, credits the roll reward
// and any target bonuses, and returns the roll view plus coins earned.
func (ge *GameEngine) rollOnce(state *models.PlayerState, multiplier float64) (models.RollResult, int64) {
	base := RollNumber(ge.rng, state.NumberLimit)
	boosted := BoostedNumber(base, multiplier)

	state.Stats.TotalRolls++
	state.Stats.TotalNumbers += base
	if base > state.Stats.BestNumber {
		state.Stats.BestNumber = base
	}

	earned := RollReward
	state.Coins += RollReward

	var bonuses []models.TargetBonus
	targets := state.TargetNumbers
	for _, target := range []struct {
		name      string
		threshold int64
		reward    int64
	}{
		{"easy", targets.Easy, targets.Rewards.Easy},
		{"medium", targets.Medium, targets.Rewards.Medium},
		{"hard", targets.Hard, targets.Rewards.Hard},
	} {
		if target.threshold > 0 && base >= target.threshold {
			state.Coins += target.reward
			earned += target.reward
			bonuses = append(bonuses, models.TargetBonus{Target: target.name, Reward: target.reward})
		}
	}

	return models.RollResult{
		BaseNumber:         base,
		BoostedNumber:      boosted,
		BaseProbability:    1 / float64(base),
		BoostedProbability: 1 / float64(max64(boosted, 1)),
		TargetRewards:      bonuses,
	}, earned
}

// Reroll pays the fixed reroll cost for one fresh draw and reports the
// improvement over the previous best.
func (ge *GameEngine) Reroll() (*models.RerollResult, error) {
	var result models.RerollResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		if state.Coins < RerollCost {
			return validationErrorf("not enough coins: reroll costs %d", RerollCost)
		}
		state.Coins -= RerollCost

		multiplier := ComposeMultiplier(state, ge.enforceAuraExpiry, time.Now())

		base := RollNumber(ge.rng, state.NumberLimit)
		boosted := BoostedNumber(base, multiplier)

		var improvement int64
		if base > state.Stats.BestNumber {
			improvement = base - state.Stats.BestNumber
			state.Stats.BestNumber = base
		}

		state.Stats.TotalRolls++
		state.Stats.TotalNumbers += base

		result = models.RerollResult{
			Roll: models.RollResult{
				BaseNumber:         base,
				BoostedNumber:      boosted,
				BaseProbability:    1 / float64(base),
				BoostedProbability: 1 / float64(max64(boosted, 1)),
			},
			Multiplier:  multiplier,
			Stats:       state.Stats,
			Improvement: improvement,
			NewBalance:  state.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Gamble draws one number and pays out against a caller-chosen target range.
// Win probability is range width over the full output space; the payout
// multiplier is its inverse, capped.
func (ge *GameEngine) Gamble(req *models.GambleRequest) (*models.GambleResult, error) {
	var result models.GambleResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		if req.BetAmount <= 0 {
			return validationErrorf("bet amount must be positive")
		}
		if req.BetAmount > state.Coins {
			return validationErrorf("bet exceeds balance")
		}

		minVal, maxVal, err := models.ParseTargetRange(req.TargetRange)
		if err != nil {
			return &ValidationError{Reason: err.Error()}
		}

		base := RollNumber(ge.rng, state.NumberLimit)
		won := base >= minVal && base <= maxVal

		probability := float64(maxVal-minVal) / float64(state.NumberLimit)
		payoutMultiplier := 1 / probability
		if payoutMultiplier > GamblePayoutCap {
			payoutMultiplier = GamblePayoutCap
		}

		var payout int64
		if won {
			winnings := int64(float64(req.BetAmount) * payoutMultiplier)
			payout = winnings - req.BetAmount
			state.Coins += payout
		} else {
			payout = -req.BetAmount
			state.Coins -= req.BetAmount
		}

		result = models.GambleResult{
			Won:        won,
			Number:     base,
			Payout:     payout,
			Multiplier: payoutMultiplier,
			NewBalance: state.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DrawItem rolls a rarity tier by catalog weight and adds a random item of
// that tier to the inventory.
func (ge *GameEngine) DrawItem() (*models.DrawResult, error) {
	var result models.DrawResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		if state.Coins < DrawCost {
			return validationErrorf("not enough coins: a draw costs %d", DrawCost)
		}
		state.Coins -= DrawCost

		rarity := ge.rollRarity()
		pool := catalog.ItemsByRarity[rarity]
		item := pool[ge.rng.Intn(len(pool))]

		owned := models.OwnedItem{
			Name:   item.Name,
			Value:  item.Value,
			Icon:   item.Icon,
			Rarity: rarity,
			Color:  catalog.Rarities[rarity].Color,
		}
		state.Inventory[rarity] = append(state.Inventory[rarity], owned)
		state.Stats.TotalRolls++

		newAchievements := EvaluateAchievements(state)

		result = models.DrawResult{
			Item:            owned,
			NewBalance:      state.Coins,
			Stats:           state.Stats,
			NewAchievements: newAchievements,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (ge *GameEngine) rollRarity() catalog.Rarity {
	roll := ge.rng.Intn(100) + 1
	cumulative := 0
	for _, rarity := range catalog.RarityOrder {
		cumulative += catalog.Rarities[rarity].Chance
		if roll <= cumulative {
			return rarity
		}
	}
	return catalog.RarityOrder[len(catalog.RarityOrder)-1]
}

// TradeItem sells owned gacha items back for half their catalog value.
func (ge *GameEngine) TradeItem(req *models.TradeRequest) (*models.TradeResult, error) {
	var result models.TradeResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		if req.Amount <= 0 {
			return validationErrorf("trade amount must be positive")
		}

		item, ok := catalog.FindItem(req.Rarity, req.ItemName)
		if !ok {
			return validationErrorf("unknown item: %s (%s)", req.ItemName, req.Rarity)
		}

		var owned int64
		for _, inv := range state.Inventory[req.Rarity] {
			if inv.Name == req.ItemName {
				owned++
			}
		}
		if owned < req.Amount {
			return validationErrorf("you only have %d of this item, not %d", owned, req.Amount)
		}

		remaining := req.Amount
		kept := state.Inventory[req.Rarity][:0]
		for _, inv := range state.Inventory[req.Rarity] {
			if remaining > 0 && inv.Name == req.ItemName {
				remaining--
				continue
			}
			kept = append(kept, inv)
		}
		state.Inventory[req.Rarity] = kept

		credited := item.Value * req.Amount / 2
		state.Coins += credited

		result = models.TradeResult{
			CoinsCredited: credited,
			NewBalance:    state.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// BuyPack credits a coin pack. Payment processing lives outside the engine;
// the purchase itself always succeeds for a known pack.
func (ge *GameEngine) BuyPack(id catalog.PackID) (*models.PurchaseResult, error) {
	var result models.PurchaseResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		pack, ok := catalog.CoinPacks[id]
		if !ok {
			return validationErrorf("unknown pack: %s", id)
		}
		state.Coins += pack.Coins
		result = models.PurchaseResult{NewBalance: state.Coins}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (ge *GameEngine) BuyAura(id catalog.AuraID) (*models.PurchaseResult, error) {
	var result models.PurchaseResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		aura, ok := catalog.Auras[id]
		if !ok {
			return validationErrorf("unknown aura: %s", id)
		}
		if state.Coins < aura.Coins {
			return validationErrorf("not enough coins: %s costs %d", aura.Name, aura.Coins)
		}

		state.Coins -= aura.Coins
		state.ActiveAuras = append(state.ActiveAuras, models.ActiveAura{
			ID:          id,
			Name:        aura.Name,
			Effect:      aura.Effect,
			Duration:    aura.Duration,
			ActivatedAt: time.Now().Unix(),
		})

		EvaluateAchievements(state)

		result = models.PurchaseResult{NewBalance: state.Coins}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (ge *GameEngine) BuyGamePass(id catalog.PassID) (*models.PurchaseResult, error) {
	var result models.PurchaseResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		if _, ok := catalog.GamePasses[id]; !ok {
			return validationErrorf("unknown game pass: %s", id)
		}
		if state.GamePasses[id] {
			return validationErrorf("game pass already owned")
		}

		state.GamePasses[id] = true
		EvaluateAchievements(state)

		result = models.PurchaseResult{NewBalance: state.Coins}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (ge *GameEngine) ToggleAutoGenerate() (bool, error) {
	var active bool

	_, err := ge.withState(func(state *models.PlayerState) error {
		if !state.GamePasses[catalog.PassAutoGenerate] {
			return validationErrorf("auto generate pass not owned")
		}
		state.AutoGenerateActive = !state.AutoGenerateActive
		active = state.AutoGenerateActive
		return nil
	})
	if err != nil {
		return false, err
	}

	return active, nil
}

// IncreaseLimit buys a flat bump to the number limit.
func (ge *GameEngine) IncreaseLimit() (int64, int64, error) {
	var newLimit, balance int64

	_, err := ge.withState(func(state *models.PlayerState) error {
		if state.Coins < LimitIncreaseCost {
			return validationErrorf("not enough coins: need %d to increase the limit", LimitIncreaseCost)
		}
		state.Coins -= LimitIncreaseCost
		state.NumberLimit += LimitIncreaseAmount
		newLimit = state.NumberLimit
		balance = state.Coins
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return newLimit, balance, nil
}

// BuyMarketItem purchases from the elastic market and returns the reshaped
// market view.
func (ge *GameEngine) BuyMarketItem(req *models.BuyItemRequest) (*models.PurchaseResult, error) {
	var result models.PurchaseResult

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	_, err := ge.withState(func(state *models.PlayerState) error {
		if err := PurchaseMarketItem(state, req.ItemID, quantity); err != nil {
			return err
		}
		result = models.PurchaseResult{
			NewBalance: state.Coins,
			Market:     MarketView(state),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// MarketInfo seeds and returns the market, persisting newly seeded entries.
func (ge *GameEngine) MarketInfo() (map[catalog.MarketItemID]models.MarketItemInfo, error) {
	var view map[catalog.MarketItemID]models.MarketItemInfo

	_, err := ge.withState(func(state *models.PlayerState) error {
		view = MarketView(state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Prestige resets progress for a permanent multiplier. Always succeeds.
func (ge *GameEngine) Prestige() (*models.PrestigeResult, error) {
	var result models.PrestigeResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		result = ApplyPrestige(state, ge.keepPassesOnPrestige)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (ge *GameEngine) GetPrestigeInfo() (*models.PrestigeInfo, error) {
	state, err := ge.State()
	if err != nil {
		return nil, err
	}
	info := PrestigePreview(state)
	return &info, nil
}

func (ge *GameEngine) BuyUpgrade(req *models.BuyUpgradeRequest) (*models.PurchaseResult, int, error) {
	var result models.PurchaseResult
	var newLevel int

	_, err := ge.withState(func(state *models.PlayerState) error {
		level, err := BuyPrestigeUpgrade(state, req.UpgradeID)
		if err != nil {
			return err
		}
		newLevel = level
		result = models.PurchaseResult{NewBalance: state.Coins}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &result, newLevel, nil
}

func (ge *GameEngine) ClaimDaily() (*models.DailyClaimResult, error) {
	var result models.DailyClaimResult

	_, err := ge.withState(func(state *models.PlayerState) error {
		claim, err := ClaimDailyReward(state, time.Now())
		if err != nil {
			return err
		}
		claim.NewAchievements = EvaluateAchievements(state)
		claim.NewBalance = state.Coins
		result = claim
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (ge *GameEngine) DailyStatus() (*models.DailyStatus, error) {
	state, err := ge.State()
	if err != nil {
		return nil, err
	}
	status := DailyRewardStatus(state.DailyRewards, time.Now())
	return &status, nil
}

// CheckAchievements re-runs the evaluator; useful after out-of-band changes.
func (ge *GameEngine) CheckAchievements() ([]catalog.AchievementID, int64, error) {
	var newly []catalog.AchievementID
	var balance int64

	_, err := ge.withState(func(state *models.PlayerState) error {
		newly = EvaluateAchievements(state)
		balance = state.Coins
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return newly, balance, nil
}

func (ge *GameEngine) ListAchievements() ([]models.AchievementView, error) {
	state, err := ge.State()
	if err != nil {
		return nil, err
	}

	views := make([]models.AchievementView, 0, len(catalog.Achievements))
	for id, ach := range catalog.Achievements {
		views = append(views, models.AchievementView{
			ID:          id,
			Name:        ach.Name,
			Description: ach.Description,
			Reward:      ach.Reward,
			Icon:        ach.Icon,
			Unlocked:    state.Achievements.Has(id),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })

	return views, nil
}

// Leaderboard merges the player with a bot roster snapshot, sorted by coins.
func (ge *GameEngine) Leaderboard(bots []models.LeaderboardEntry) ([]models.LeaderboardEntry, error) {
	state, err := ge.State()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(bots)+1)
	entries = append(entries, models.LeaderboardEntry{
		Name:       "You",
		Coins:      state.Coins,
		BestNumber: state.Stats.BestNumber,
		TotalRolls: state.Stats.TotalRolls,
	})
	entries = append(entries, bots...)

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Coins > entries[j].Coins })

	return entries, nil
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
