package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"luckroll-backend/internal/config"
	"luckroll-backend/internal/handlers"
	"luckroll-backend/internal/middleware"
	"luckroll-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisService.Close()

	jwtService := services.NewJWTService(cfg)
	engine := services.NewGameEngine(redisService, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	botPool := services.NewBotPool(cfg)
	botPool.Start(ctx)
	defer botPool.Stop()

	wsHandler := handlers.NewWebSocketHandler(ctx, engine, botPool, 10*time.Second)
	gameHandler := handlers.NewGameHandler(engine)
	shopHandler := handlers.NewShopHandler(engine)
	progressHandler := handlers.NewProgressHandler(engine, botPool)
	adminHandler := handlers.NewAdminHandler(engine, redisService, jwtService, cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")
	{
		api.GET("/state", progressHandler.GetState)
		api.GET("/catalogs", shopHandler.Catalogs)
		api.GET("/leaderboard", progressHandler.GetLeaderboard)
		api.GET("/ws", wsHandler.HandleWebSocket)

		game := api.Group("/game")
		{
			game.POST("/generate_number", gameHandler.GenerateNumber)
			game.POST("/reroll", gameHandler.Reroll)
			game.POST("/gamble", gameHandler.Gamble)
			game.POST("/generate", gameHandler.DrawItem)
			game.POST("/trade_item", gameHandler.TradeItem)
			game.GET("/inventory", gameHandler.GetInventory)
		}

		market := api.Group("/market")
		{
			market.GET("/info", gameHandler.GetMarketInfo)
			market.POST("/buy_item", gameHandler.BuyItem)
		}

		shop := api.Group("/shop")
		{
			shop.POST("/buy_pack", shopHandler.BuyPack)
			shop.POST("/buy_aura", shopHandler.BuyAura)
			shop.POST("/buy_game_pass", shopHandler.BuyGamePass)
			shop.POST("/toggle_auto_generate", shopHandler.ToggleAutoGenerate)
			shop.POST("/increase_limit", shopHandler.IncreaseLimit)
			shop.POST("/buy_prestige_upgrade", shopHandler.BuyPrestigeUpgrade)
		}

		progress := api.Group("/progress")
		{
			progress.POST("/prestige", progressHandler.Prestige)
			progress.GET("/prestige_info", progressHandler.GetPrestigeInfo)
			progress.POST("/claim_daily_reward", progressHandler.ClaimDailyReward)
			progress.GET("/daily_reward_status", progressHandler.GetDailyRewardStatus)
			progress.POST("/check_achievements", progressHandler.CheckAchievements)
			progress.GET("/achievements", progressHandler.GetAchievements)
		}
	}

	router.POST("/admin/login", adminHandler.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(jwtService))
	{
		admin.POST("/logout", adminHandler.Logout)
		admin.POST("/add_coins", adminHandler.AddCoins)
		admin.POST("/reset_stats", adminHandler.ResetStats)
		admin.POST("/reset_inventory", adminHandler.ResetInventory)
		admin.POST("/reset_prestige", adminHandler.ResetPrestige)
		admin.POST("/reset_all", adminHandler.ResetAll)
		admin.POST("/give_item", adminHandler.GiveItem)
		admin.POST("/give_aura", adminHandler.GiveAura)
		admin.POST("/give_pass", adminHandler.GivePass)
		admin.POST("/set_prestige_level", adminHandler.SetPrestigeLevel)
		admin.POST("/set_number_limit", adminHandler.SetNumberLimit)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
