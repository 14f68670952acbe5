package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Obed2006p/Rincon-De-Lore/internal/auth"
	"github.com/Obed2006p/Rincon-De-Lore/internal/cart"
	"github.com/Obed2006p/Rincon-De-Lore/internal/catalog"
	"github.com/Obed2006p/Rincon-De-Lore/internal/chat"
	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
	"github.com/Obed2006p/Rincon-De-Lore/internal/config"
	"github.com/Obed2006p/Rincon-De-Lore/internal/db"
	"github.com/Obed2006p/Rincon-De-Lore/internal/middleware"
	"github.com/Obed2006p/Rincon-De-Lore/internal/order"
	"github.com/Obed2006p/Rincon-De-Lore/internal/storage"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()

	// ───────────────────────── CATALOG ─────────────────────────
	// No document store configured, or unreachable → sample menu.
	var catalogRepo catalog.Repository
	if cfg.MongoURI == "" {
		log.Warn("MONGO_URI not set, serving the sample menu")
		catalogRepo = catalog.NewInMemoryRepository(catalog.SampleMenu())
	} else {
		mongoDB, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.WithError(err).Warn("mongo unreachable, serving the sample menu")
			catalogRepo = catalog.NewInMemoryRepository(catalog.SampleMenu())
		} else {
			log.Info("connected to mongo catalog")
			catalogRepo = catalog.NewMongoRepository(mongoDB)
		}
	}

	catalogService := catalog.NewService(catalogRepo, log)

	// ───────────────────────── ORDERS ─────────────────────────
	var orderRepo order.Repository
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, keeping orders in memory")
		orderRepo = order.NewInMemoryRepository()
	} else {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("postgres connection failed")
		}
		defer pool.Close()

		pgRepo := order.NewPostgresRepository(pool)
		if err := pgRepo.InitSchema(ctx); err != nil {
			log.WithError(err).Fatal("failed to initialize orders schema")
		}
		log.Info("connected to postgres order archive")
		orderRepo = pgRepo
	}

	orderService := order.NewService(orderRepo)

	// ───────────────────────── CORE ─────────────────────────
	carts := cart.NewManager()
	dispatcher := checkout.NewDispatcher(cfg.RestaurantPhone)

	var geminiClient chat.Client
	var engine *chat.Engine
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, chat assistant disabled")
	} else {
		geminiClient = chat.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		engine = chat.NewEngine(
			geminiClient,
			catalogService,
			carts,
			dispatcher,
			orderService,
			chat.ParseFlow(cfg.ChatFlow),
			log,
		)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(carts, catalogService)
	orderHandler := order.NewHandler(orderService, carts, dispatcher)
	chatHandler := chat.NewHandler(engine)

	// ───────────────────────── MENU ROUTES ─────────────────────────
	r.GET("/menu", catalogHandler.List)
	r.GET("/menu/today", catalogHandler.Today)

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("", cartHandler.Create)
		cartGroup.GET("/:id", cartHandler.Get)
		cartGroup.POST("/:id/items", cartHandler.AddItem)
		cartGroup.PUT("/:id/items/:itemId", cartHandler.SetQuantity)
		cartGroup.POST("/:id/checkout", orderHandler.Checkout)
	}

	// ───────────────────────── CHAT ROUTES ─────────────────────────
	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("/session", chatHandler.Open)
		chatGroup.POST("/session/:id", chatHandler.Send)
		chatGroup.DELETE("/session/:id", chatHandler.Close)
	}

	// Relay with the legacy wire contract; 405 on anything but POST.
	r.Any("/api/chat", chat.RelayHandler(geminiClient, log))

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	if !cfg.HasAdmin() {
		log.Warn("admin credentials not fully configured, admin routes disabled")
	} else {
		tokens := auth.NewTokenManager(cfg.JWTSecret)
		authService := auth.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, tokens)
		authHandler := auth.NewHandler(authService)

		var imageStorage catalog.Storage
		if cfg.HasStorage() {
			r2Client, err := storage.NewR2Client(ctx, storage.R2Config{
				Endpoint:      cfg.R2Endpoint,
				AccessKey:     cfg.R2AccessKey,
				SecretKey:     cfg.R2SecretKey,
				Bucket:        cfg.R2Bucket,
				PublicBaseURL: cfg.R2PublicBaseURL,
			})
			if err != nil {
				log.WithError(err).Fatal("R2 init failed")
			}
			imageStorage = r2Client
		} else {
			log.Warn("R2 not configured, dish image uploads disabled")
		}

		adminMenuHandler := catalog.NewAdminHandler(catalogService, imageStorage)

		r.POST("/admin/login", authHandler.Login)

		admin := r.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(tokens),
			middleware.RequireRole(auth.RoleAdmin),
		)
		{
			admin.POST("/menu", adminMenuHandler.Upsert)
			admin.DELETE("/menu/:id", adminMenuHandler.Delete)
			admin.POST("/menu/:id/image", adminMenuHandler.UploadImage)
			admin.GET("/orders", orderHandler.List)
		}
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Infof("API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
