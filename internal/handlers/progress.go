package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luckroll-backend/internal/services"
)

type ProgressHandler struct {
	engine *services.GameEngine
	bots   *services.BotPool
}

func NewProgressHandler(engine *services.GameEngine, bots *services.BotPool) *ProgressHandler {
	return &ProgressHandler{engine: engine, bots: bots}
}

func (h *ProgressHandler) Prestige(c *gin.Context) {
	result, err := h.engine.Prestige()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"prestige_points": result.PrestigePoints,
		"new_multiplier":  result.NewMultiplier,
		"prestige_level":  result.PrestigeLevel,
	})
}

func (h *ProgressHandler) GetPrestigeInfo(c *gin.Context) {
	info, err := h.engine.GetPrestigeInfo()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"info":    info,
	})
}

func (h *ProgressHandler) ClaimDailyReward(c *gin.Context) {
	result, err := h.engine.ClaimDaily()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *ProgressHandler) GetDailyRewardStatus(c *gin.Context) {
	status, err := h.engine.DailyStatus()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"can_claim": status.CanClaim,
		"streak":    status.Streak,
	})
}

func (h *ProgressHandler) CheckAchievements(c *gin.Context) {
	newly, balance, err := h.engine.CheckAchievements()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"new_achievements": newly,
		"new_balance":      balance,
	})
}

func (h *ProgressHandler) GetAchievements(c *gin.Context) {
	views, err := h.engine.ListAchievements()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"achievements": views,
	})
}

func (h *ProgressHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.engine.Leaderboard(h.bots.Snapshot())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"leaderboard": entries,
	})
}

func (h *ProgressHandler) GetState(c *gin.Context) {
	state, err := h.engine.State()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"state":   state,
	})
}
