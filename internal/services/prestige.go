package services

import (
	"math"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
)

// PrestigePoints scores a run: floor(sqrt(best_number) * log10(total_rolls + 1)).
func PrestigePoints(bestNumber, totalRolls int64) int64 {
	return int64(math.Sqrt(float64(bestNumber)) * math.Log10(float64(totalRolls)+1))
}

// ApplyPrestige performs the reset transition: score the run, bump the
// prestige block, then rebuild the document with fresh defaults. The
// prestige block (upgrade levels included) carries forward; the number
// limit restarts from the raised post-prestige baseline rather than the
// original starting value. Game passes are dropped with the rest of the
// progress unless keepPasses is set — the legacy economy read them before
// the reset and then discarded them.
func ApplyPrestige(state *models.PlayerState, keepPasses bool) models.PrestigeResult {
	points := PrestigePoints(state.Stats.BestNumber, state.Stats.TotalRolls)
	newMultiplier := 1.0 + float64(points)*0.1

	prestige := state.Prestige
	prestige.Level++
	prestige.Multiplier = newMultiplier
	prestige.Points = points
	prestige.TotalResets++

	ownedPasses := state.GamePasses

	fresh := models.NewDefaultState()
	*state = *fresh
	state.NumberLimit = models.PrestigeResetLimit
	state.Prestige = prestige

	if keepPasses {
		for id, owned := range ownedPasses {
			if owned {
				state.GamePasses[id] = true
			}
		}
	}

	return models.PrestigeResult{
		PrestigePoints: points,
		NewMultiplier:  newMultiplier,
		PrestigeLevel:  prestige.Level,
	}
}

// BuyPrestigeUpgrade purchases one level of a prestige upgrade. Cost scales
// with the next level; coin_multiplier and limit_increase apply immediately,
// luck_boost is read by the multiplier composer.
func BuyPrestigeUpgrade(state *models.PlayerState, id catalog.UpgradeID) (int, error) {
	upgrade, ok := catalog.PrestigeUpgrades[id]
	if !ok {
		return 0, validationErrorf("unknown prestige upgrade: %s", id)
	}

	currentLevel := state.Prestige.Upgrades[id]
	if currentLevel >= upgrade.MaxLevel {
		return 0, validationErrorf("%s is already at max level", upgrade.Name)
	}

	cost := upgrade.Cost * int64(currentLevel+1)
	if state.Coins < cost {
		return 0, validationErrorf("not enough coins: need %d", cost)
	}

	state.Coins -= cost

	switch id {
	case catalog.UpgradeCoinMultiplier:
		state.Prestige.Multiplier += upgrade.Effect
	case catalog.UpgradeLimitIncrease:
		state.NumberLimit += int64(upgrade.Effect)
	case catalog.UpgradeLuckBoost:
		// applied on every roll by ComposeMultiplier
	}

	state.Prestige.Upgrades[id] = currentLevel + 1
	return currentLevel + 1, nil
}

// PrestigePreview reports the current prestige standing and what the next
// reset would pay, without mutating anything.
func PrestigePreview(state *models.PlayerState) models.PrestigeInfo {
	levels := make(map[catalog.UpgradeID]int, len(catalog.PrestigeUpgrades))
	for id := range catalog.PrestigeUpgrades {
		levels[id] = state.Prestige.Upgrades[id]
	}

	return models.PrestigeInfo{
		Level:             state.Prestige.Level,
		CurrentMultiplier: state.Prestige.Multiplier,
		NextMultiplier:    1.0 + float64(state.Prestige.Level+1)*0.1,
		PendingPoints:     PrestigePoints(state.Stats.BestNumber, state.Stats.TotalRolls),
		UpgradeLevels:     levels,
	}
}
