package services_test

import (
	"testing"
	"time"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
	"luckroll-backend/internal/services"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDailyFirstClaim(t *testing.T) {
	state := models.NewDefaultState()
	now := day("2026-03-01")

	result, err := services.ClaimDailyReward(state, now)
	if err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// The streak advances before the schedule lookup, so a fresh ledger
	// pays the second schedule entry.
	want := catalog.DailyRewards[1]
	if result.Coins != want.Coins {
		t.Errorf("first claim paid %d, want %d", result.Coins, want.Coins)
	}
	if result.Streak != 1 {
		t.Errorf("streak after first claim = %d, want 1", result.Streak)
	}
	if state.Coins != models.StartingCoins+want.Coins {
		t.Errorf("balance = %d, want %d", state.Coins, models.StartingCoins+want.Coins)
	}
	if state.DailyRewards.LastClaim != "2026-03-01" {
		t.Errorf("last claim = %q, want 2026-03-01", state.DailyRewards.LastClaim)
	}
}

func TestDailySameDayRejected(t *testing.T) {
	state := models.NewDefaultState()
	now := day("2026-03-01")

	if _, err := services.ClaimDailyReward(state, now); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	coins := state.Coins
	later := now.Add(8 * time.Hour)
	if _, err := services.ClaimDailyReward(state, later); !services.IsValidationError(err) {
		t.Errorf("same-day claim: got %v, want validation error", err)
	}
	if state.Coins != coins {
		t.Errorf("rejected claim changed balance from %d to %d", coins, state.Coins)
	}
}

func TestDailyConsecutiveDays(t *testing.T) {
	state := models.NewDefaultState()

	for i, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		result, err := services.ClaimDailyReward(state, day(date))
		if err != nil {
			t.Fatalf("claim on %s failed: %v", date, err)
		}
		if result.Streak != i+1 {
			t.Errorf("streak on %s = %d, want %d", date, result.Streak, i+1)
		}
		if result.Coins != catalog.DailyRewards[i+1].Coins {
			t.Errorf("reward on %s = %d, want %d", date, result.Coins, catalog.DailyRewards[i+1].Coins)
		}
	}
}

func TestDailyGapResetsStreak(t *testing.T) {
	state := models.NewDefaultState()

	if _, err := services.ClaimDailyReward(state, day("2026-03-01")); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if _, err := services.ClaimDailyReward(state, day("2026-03-02")); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	result, err := services.ClaimDailyReward(state, day("2026-03-05"))
	if err != nil {
		t.Fatalf("claim after gap failed: %v", err)
	}
	if result.Streak != 1 {
		t.Errorf("streak after a gap = %d, want 1", result.Streak)
	}
	if result.Coins != catalog.DailyRewards[1].Coins {
		t.Errorf("reward after a gap = %d, want %d", result.Coins, catalog.DailyRewards[1].Coins)
	}
}

func TestDailyStreakWraps(t *testing.T) {
	state := models.NewDefaultState()
	state.DailyRewards = models.DailyLedger{LastClaim: "2026-03-06", Streak: 6}

	result, err := services.ClaimDailyReward(state, day("2026-03-07"))
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if result.Streak != 0 {
		t.Errorf("streak after wrap = %d, want 0", result.Streak)
	}
	if result.Coins != catalog.DailyRewards[0].Coins {
		t.Errorf("wrap reward = %d, want %d", result.Coins, catalog.DailyRewards[0].Coins)
	}
}

func TestDailyStreakStaysInRange(t *testing.T) {
	state := models.NewDefaultState()

	current := day("2026-03-01")
	for i := 0; i < 20; i++ {
		if _, err := services.ClaimDailyReward(state, current); err != nil {
			t.Fatalf("claim %d failed: %v", i, err)
		}
		if s := state.DailyRewards.Streak; s < 0 || s >= 7 {
			t.Fatalf("streak out of range after claim %d: %d", i, s)
		}
		current = current.AddDate(0, 0, 1)
	}
}

func TestDailyRewardStatus(t *testing.T) {
	now := day("2026-03-02")

	status := services.DailyRewardStatus(models.DailyLedger{}, now)
	if !status.CanClaim || status.Streak != 0 {
		t.Errorf("fresh ledger status = %+v, want claimable at streak 0", status)
	}

	status = services.DailyRewardStatus(models.DailyLedger{LastClaim: "2026-03-02", Streak: 3}, now)
	if status.CanClaim {
		t.Error("already claimed today, status should not be claimable")
	}

	status = services.DailyRewardStatus(models.DailyLedger{LastClaim: "2026-03-01", Streak: 3}, now)
	if !status.CanClaim || status.Streak != 3 {
		t.Errorf("next-day status = %+v, want claimable at streak 3", status)
	}

	status = services.DailyRewardStatus(models.DailyLedger{LastClaim: "2026-02-25", Streak: 3}, now)
	if !status.CanClaim || status.Streak != 0 {
		t.Errorf("lapsed status = %+v, want claimable at streak 0", status)
	}
}
