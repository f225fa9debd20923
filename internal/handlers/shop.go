package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/models"
	"luckroll-backend/internal/services"
)

type ShopHandler struct {
	engine *services.GameEngine
}

func NewShopHandler(engine *services.GameEngine) *ShopHandler {
	return &ShopHandler{engine: engine}
}

func (h *ShopHandler) BuyPack(c *gin.Context) {
	var req models.BuyPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	result, err := h.engine.BuyPack(req.PackID)
	if err != nil {
		respondError(c, err)
		return
	}

	pack := catalog.CoinPacks[req.PackID]
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "purchased " + pack.Name,
		"new_balance": result.NewBalance,
	})
}

func (h *ShopHandler) BuyAura(c *gin.Context) {
	var req models.BuyAuraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	result, err := h.engine.BuyAura(req.AuraID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "activated " + catalog.Auras[req.AuraID].Name,
		"new_balance": result.NewBalance,
	})
}

func (h *ShopHandler) BuyGamePass(c *gin.Context) {
	var req models.BuyPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	result, err := h.engine.BuyGamePass(req.PassID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "purchased the " + catalog.GamePasses[req.PassID].Name,
		"new_balance": result.NewBalance,
	})
}

func (h *ShopHandler) ToggleAutoGenerate(c *gin.Context) {
	active, err := h.engine.ToggleAutoGenerate()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"is_active": active,
	})
}

func (h *ShopHandler) IncreaseLimit(c *gin.Context) {
	newLimit, balance, err := h.engine.IncreaseLimit()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"new_limit":   newLimit,
		"new_balance": balance,
	})
}

func (h *ShopHandler) BuyPrestigeUpgrade(c *gin.Context) {
	var req models.BuyUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	result, newLevel, err := h.engine.BuyUpgrade(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"new_level":   newLevel,
		"new_balance": result.NewBalance,
	})
}

// Catalogs exposes the static content tables so clients render prices and
// descriptions without hardcoding them.
func (h *ShopHandler) Catalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"coin_packs":        catalog.CoinPacks,
		"auras":             catalog.Auras,
		"game_passes":       catalog.GamePasses,
		"market_items":      catalog.MarketItems,
		"rarities":          catalog.Rarities,
		"prestige_upgrades": catalog.PrestigeUpgrades,
		"daily_rewards":     catalog.DailyRewards,
	})
}
