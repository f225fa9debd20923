package models

// BotAgent is the ephemeral record for one simulated player. It is never
// persisted; the owning goroutine in the bot pool is the only writer.
type BotAgent struct {
	Name       string `json:"name"`
	Coins      int64  `json:"coins"`
	BestNumber int64  `json:"best_number"`
	TotalRolls int64  `json:"total_rolls"`
	LastActive int64  `json:"last_active"` // unix seconds
	Active     bool   `json:"active"`
}

type LeaderboardEntry struct {
	Name       string `json:"name"`
	Coins      int64  `json:"coins"`
	BestNumber int64  `json:"best_number"`
	TotalRolls int64  `json:"total_rolls"`
}
