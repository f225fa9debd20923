package services

import (
	"math"
	"math/rand"
	"time"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
)

// rollExponent shapes the reward distribution: sampling uniformly in
// [1, limit^0.7] and raising to 1/0.7 concentrates mass at small numbers
// while keeping a long tail up to the limit.
const rollExponent = 0.7

// RollNumber draws one base magnitude in [1, limit]. Each call is an
// independent draw.
func RollNumber(rng *rand.Rand, limit int64) int64 {
	if limit <= 1 {
		return 1
	}

	upper := math.Pow(float64(limit), rollExponent)
	u := 1 + rng.Float64()*(upper-1)
	n := int64(math.Pow(u, 1/rollExponent))

	if n < 1 {
		n = 1
	}
	if n > limit {
		n = limit
	}
	return n
}

// ComposeMultiplier combines every active boost into one scalar. The order
// is fixed: aura products in list order, then the double-luck pass, then the
// prestige multiplier, then the luck-boost upgrade. Callers compare results
// bit-for-bit in tests, so the order must not change.
func ComposeMultiplier(state *models.PlayerState, enforceAuraExpiry bool, now time.Time) float64 {
	multiplier := 1.0

	for _, active := range state.ActiveAuras {
		aura, ok := catalog.Auras[active.ID]
		if !ok {
			continue
		}
		if enforceAuraExpiry {
			expiry := time.Unix(active.ActivatedAt, 0).Add(aura.Lifetime)
			if now.After(expiry) {
				continue
			}
		}
		multiplier *= aura.Multiplier
	}

	if state.GamePasses[catalog.PassDoubleLuck] {
		multiplier *= 2
	}

	multiplier *= state.Prestige.Multiplier

	if level := state.Prestige.Upgrades[catalog.UpgradeLuckBoost]; level > 0 {
		boost := catalog.PrestigeUpgrades[catalog.UpgradeLuckBoost].Effect * float64(level)
		multiplier *= 1 + boost
	}

	return multiplier
}

// BoostedNumber is the cosmetic display magnitude. Stats and rewards always
// come from the base magnitude.
func BoostedNumber(base int64, multiplier float64) int64 {
	return int64(float64(base) * multiplier)
}
