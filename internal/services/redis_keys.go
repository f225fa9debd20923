package services

import "time"

const (
	KeyPlayerState  = "game:player_state"
	KeyAdminSession = "admin:session:%s"

	TTLAdminSession = 24 * time.Hour
)
