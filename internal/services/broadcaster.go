package services

import "luckroll-backend/internal/models"

type Broadcaster interface {
	BroadcastLeaderboard(entries []models.LeaderboardEntry)
}
