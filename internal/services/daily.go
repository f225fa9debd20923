package services

import (
	"time"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
)

// DailyRewardStatus reports whether a claim is available today and the
// streak that would apply, without mutating the ledger.
func DailyRewardStatus(ledger models.DailyLedger, now time.Time) models.DailyStatus {
	streak := ledger.Streak

	if last, ok := models.ParseDay(ledger.LastClaim); ok {
		gap := calendarDayGap(last, now)
		if gap == 0 {
			return models.DailyStatus{CanClaim: false, Streak: streak}
		}
		if gap > 1 {
			streak = 0
		}
	}

	return models.DailyStatus{CanClaim: true, Streak: streak}
}

// ClaimDailyReward advances the streak ledger and credits the scheduled
// reward. Claiming twice on the same calendar day is rejected; a gap of two
// or more days resets the streak before the new claim counts.
func ClaimDailyReward(state *models.PlayerState, now time.Time) (models.DailyClaimResult, error) {
	streak := state.DailyRewards.Streak

	if last, ok := models.ParseDay(state.DailyRewards.LastClaim); ok {
		gap := calendarDayGap(last, now)
		if gap == 0 {
			return models.DailyClaimResult{}, validationErrorf("daily reward already claimed today")
		}
		if gap > 1 {
			streak = 0
		}
	}

	streak = (streak + 1) % 7
	reward := catalog.DailyRewards[streak]

	state.Coins += reward.Coins
	state.DailyRewards.LastClaim = models.DayString(now)
	state.DailyRewards.Streak = streak

	return models.DailyClaimResult{
		Coins:      reward.Coins,
		RewardName: reward.Name,
		Streak:     streak,
		NewBalance: state.Coins,
	}, nil
}

// calendarDayGap counts whole calendar days between two instants, ignoring
// time of day.
func calendarDayGap(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
