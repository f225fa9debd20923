package services_test

import (
	"testing"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
	"luckroll-backend/internal/services"
)

func TestEvaluateAchievementsRollCount(t *testing.T) {
	state := models.NewDefaultState()
	state.Stats.TotalRolls = 100

	newly := services.EvaluateAchievements(state)

	if !contains(newly, catalog.AchRolls100) {
		t.Errorf("expected rolls_100 to unlock, got %v", newly)
	}
	if !state.Achievements.Has(catalog.AchRolls100) {
		t.Error("rolls_100 not recorded on state")
	}

	// The rolls_100 reward alone pushes the balance past every coin
	// threshold, so the coin achievements unlock in the same pass.
	for _, id := range []catalog.AchievementID{
		catalog.AchCoins10000, catalog.AchCoins100000, catalog.AchCoins1000000,
	} {
		if !state.Achievements.Has(id) {
			t.Errorf("expected %s to unlock from the reward credit", id)
		}
	}

	wantCoins := models.StartingCoins +
		catalog.Achievements[catalog.AchRolls100].Reward +
		catalog.Achievements[catalog.AchCoins10000].Reward +
		catalog.Achievements[catalog.AchCoins100000].Reward +
		catalog.Achievements[catalog.AchCoins1000000].Reward
	if state.Coins != wantCoins {
		t.Errorf("balance after rewards = %d, want %d", state.Coins, wantCoins)
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	state := models.NewDefaultState()
	state.Stats.TotalRolls = 100
	state.Stats.BestNumber = 10000

	first := services.EvaluateAchievements(state)
	if len(first) == 0 {
		t.Fatal("expected unlocks on the first evaluation")
	}

	coins := state.Coins
	second := services.EvaluateAchievements(state)
	if len(second) != 0 {
		t.Errorf("second evaluation unlocked %v, want none", second)
	}
	if state.Coins != coins {
		t.Errorf("second evaluation changed balance from %d to %d", coins, state.Coins)
	}
}

func TestEvaluateAchievementsBestNumber(t *testing.T) {
	state := models.NewDefaultState()
	state.Stats.BestNumber = 999

	if newly := services.EvaluateAchievements(state); contains(newly, catalog.AchBest1000) {
		t.Error("best_1000 unlocked below its threshold")
	}

	state.Stats.BestNumber = 1000
	if newly := services.EvaluateAchievements(state); !contains(newly, catalog.AchBest1000) {
		t.Error("best_1000 did not unlock at its threshold")
	}
}

func TestEvaluateAchievementsCollections(t *testing.T) {
	state := models.NewDefaultState()

	for id := range catalog.Auras {
		state.ActiveAuras = append(state.ActiveAuras, models.ActiveAura{ID: id})
	}
	newly := services.EvaluateAchievements(state)
	if !contains(newly, catalog.AchAllAuras) {
		t.Errorf("expected all_auras with every aura owned, got %v", newly)
	}

	for id := range catalog.GamePasses {
		state.GamePasses[id] = true
	}
	newly = services.EvaluateAchievements(state)
	if !contains(newly, catalog.AchAllPasses) {
		t.Errorf("expected all_passes with every pass owned, got %v", newly)
	}
}

func TestEvaluateAchievementsPartialCollection(t *testing.T) {
	state := models.NewDefaultState()
	state.ActiveAuras = []models.ActiveAura{{ID: catalog.AuraLucky}}

	if newly := services.EvaluateAchievements(state); contains(newly, catalog.AchAllAuras) {
		t.Error("all_auras unlocked with a single aura")
	}
}

func contains(ids []catalog.AchievementID, want catalog.AchievementID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
