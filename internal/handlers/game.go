package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luckroll-backend/internal/models"
	"luckroll-backend/internal/services"
)

type GameHandler struct {
	engine *services.GameEngine
}

func NewGameHandler(engine *services.GameEngine) *GameHandler {
	return &GameHandler{engine: engine}
}

// respondError maps engine failures onto HTTP: rejected-before-mutation
// validation errors are the caller's fault, everything else (persistence
// included) is a server error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if services.IsValidationError(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func (h *GameHandler) GenerateNumber(c *gin.Context) {
	result, err := h.engine.GenerateNumber()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *GameHandler) Reroll(c *gin.Context) {
	result, err := h.engine.Reroll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *GameHandler) Gamble(c *gin.Context) {
	var req models.GambleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	result, err := h.engine.Gamble(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *GameHandler) DrawItem(c *gin.Context) {
	result, err := h.engine.DrawItem()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item":    result.Item,
		"result":  result,
	})
}

func (h *GameHandler) TradeItem(c *gin.Context) {
	var req models.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.engine.TradeItem(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *GameHandler) GetMarketInfo(c *gin.Context) {
	market, err := h.engine.MarketInfo()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"market_info": market,
	})
}

func (h *GameHandler) BuyItem(c *gin.Context) {
	var req models.BuyItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.engine.BuyMarketItem(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"new_balance": result.NewBalance,
		"new_market":  result.Market,
	})
}

func (h *GameHandler) GetInventory(c *gin.Context) {
	state, err := h.engine.State()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"inventory":       state.Inventory,
		"market_holdings": state.MarketHoldings,
	})
}
