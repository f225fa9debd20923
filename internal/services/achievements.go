package services

import (
	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
)

// EvaluateAchievements unlocks every achievement whose predicate the state
// now satisfies and credits its reward. Each id unlocks at most once for the
// lifetime of the state; a second call with no intervening progress returns
// an empty slice.
func EvaluateAchievements(state *models.PlayerState) []catalog.AchievementID {
	var newly []catalog.AchievementID

	unlock := func(id catalog.AchievementID, satisfied bool) {
		if satisfied && !state.Achievements.Has(id) {
			state.Achievements.Unlocked = append(state.Achievements.Unlocked, id)
			state.Coins += catalog.Achievements[id].Reward
			newly = append(newly, id)
		}
	}

	unlock(catalog.AchRolls100, state.Stats.TotalRolls >= 100)
	unlock(catalog.AchRolls1000, state.Stats.TotalRolls >= 1000)
	unlock(catalog.AchRolls10000, state.Stats.TotalRolls >= 10000)

	unlock(catalog.AchBest1000, state.Stats.BestNumber >= 1000)
	unlock(catalog.AchBest10000, state.Stats.BestNumber >= 10000)
	unlock(catalog.AchBest100000, state.Stats.BestNumber >= 100000)
	unlock(catalog.AchBest1000000, state.Stats.BestNumber >= 1000000)

	unlock(catalog.AchCoins10000, state.Coins >= 10000)
	unlock(catalog.AchCoins100000, state.Coins >= 100000)
	unlock(catalog.AchCoins1000000, state.Coins >= 1000000)

	unlock(catalog.AchAllAuras, ownsEveryAura(state))
	unlock(catalog.AchAllPasses, ownsEveryPass(state))

	return newly
}

// ownsEveryAura checks membership against the full catalog key set; it is
// not duration-gated, owning each aura at least once is enough.
func ownsEveryAura(state *models.PlayerState) bool {
	owned := make(map[catalog.AuraID]bool, len(state.ActiveAuras))
	for _, aura := range state.ActiveAuras {
		owned[aura.ID] = true
	}
	for id := range catalog.Auras {
		if !owned[id] {
			return false
		}
	}
	return true
}

func ownsEveryPass(state *models.PlayerState) bool {
	for id := range catalog.GamePasses {
		if !state.GamePasses[id] {
			return false
		}
	}
	return true
}
