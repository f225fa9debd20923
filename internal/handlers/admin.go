package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"luckroll-backend/internal/catalog"
	"luckroll-backend/internal/config"
	"luckroll-backend/internal/models"
	"luckroll-backend/internal/services"
)

type AdminHandler struct {
	engine       *services.GameEngine
	redisService *services.RedisService
	jwtService   *services.JWTService
	cfg          *config.Config
}

func NewAdminHandler(engine *services.GameEngine, redisService *services.RedisService, jwtService *services.JWTService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		engine:       engine,
		redisService: redisService,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	hash := sha256.Sum256([]byte(req.Password))
	passwordHash := hex.EncodeToString(hash[:])

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(passwordHash), []byte(h.cfg.AdminPasswordHash)) == 1
	if !usernameOK || !passwordOK {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials"})
		return
	}

	sessionID := models.GenerateSessionID()
	if h.redisService != nil {
		if err := h.redisService.StoreAdminSession(sessionID, req.Username); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create session"})
			return
		}
	}

	token, err := h.jwtService.GenerateToken(req.Username, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if h.redisService != nil && sessionID != "" {
		h.redisService.DeleteAdminSession(sessionID)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

func (h *AdminHandler) AddCoins(c *gin.Context) {
	var req models.AdminAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	balance, err := h.engine.AdminAddCoins(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "new_balance": balance})
}

func (h *AdminHandler) ResetStats(c *gin.Context) {
	if err := h.engine.AdminResetStats(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ResetInventory(c *gin.Context) {
	if err := h.engine.AdminResetInventory(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ResetPrestige(c *gin.Context) {
	if err := h.engine.AdminResetPrestige(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ResetAll(c *gin.Context) {
	if err := h.engine.AdminResetAll(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) GiveItem(c *gin.Context) {
	var req models.AdminGiveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if err := h.engine.AdminGiveItem(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) GiveAura(c *gin.Context) {
	var req models.BuyAuraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if err := h.engine.AdminGiveAura(req.AuraID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "added " + catalog.Auras[req.AuraID].Name})
}

func (h *AdminHandler) GivePass(c *gin.Context) {
	var req models.BuyPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if err := h.engine.AdminGivePass(req.PassID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) SetPrestigeLevel(c *gin.Context) {
	var req models.AdminSetLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if err := h.engine.AdminSetPrestigeLevel(req.Level); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) SetNumberLimit(c *gin.Context) {
	var req models.AdminSetLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	if err := h.engine.AdminSetNumberLimit(req.Limit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
