package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/threadcount/backend/internal/cache"
	"github.com/threadcount/backend/internal/config"
	"github.com/threadcount/backend/internal/handlers"
	"github.com/threadcount/backend/internal/logger"
	"github.com/threadcount/backend/internal/middleware"
	"github.com/threadcount/backend/internal/repository"
	"github.com/threadcount/backend/internal/service"
	"github.com/threadcount/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	log := logger.Default()
	log.Info("starting threadcount API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Redis backs the short-TTL analytics caches; the API degrades to
	// uncached recomputation when it is not configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info("redis cache connected", logger.String("host", cfg.Redis.Host))
	} else {
		log.Warn("redis not configured, running without analytics cache")
	}

	// Initialize repositories
	itemRepo := repository.NewItemRepository(supabaseClient)
	wearLogRepo := repository.NewWearLogRepository(supabaseClient)
	prefRepo := repository.NewPreferenceRepository(supabaseClient)
	dismissalRepo := repository.NewDismissalRepository(supabaseClient)
	snapshotRepo := repository.NewSnapshotRepository(supabaseClient)

	// Initialize services
	analyticsService := service.NewAnalyticsService(itemRepo, wearLogRepo, prefRepo)
	gapService := service.NewGapService(itemRepo, dismissalRepo, redisClient)
	seasonalService := service.NewSeasonalService(itemRepo, wearLogRepo, snapshotRepo)
	preferenceService := service.NewPreferenceService(prefRepo)
	resaleService := service.NewResaleService(itemRepo)
	tripService := service.NewTripService()

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	gapsHandler := handlers.NewGapsHandler(gapService)
	seasonalHandler := handlers.NewSeasonalHandler(seasonalService)
	preferencesHandler := handlers.NewPreferencesHandler(preferenceService)
	resaleHandler := handlers.NewResaleHandler(resaleService)
	tripsHandler := handlers.NewTripsHandler(tripService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Analytics routes
			protected.GET("/analytics/health-score", analyticsHandler.GetHealthScore)
			protected.GET("/analytics/brands", analyticsHandler.GetBrands)
			protected.GET("/analytics/heatmap", analyticsHandler.GetHeatmap)
			protected.GET("/analytics/neglect", analyticsHandler.GetNeglect)

			// Gap analysis routes
			protected.GET("/analytics/gaps", gapsHandler.GetGaps)
			protected.POST("/analytics/gaps/:id/dismiss", gapsHandler.DismissGap)

			// Seasonal routes
			protected.GET("/analytics/seasonal", seasonalHandler.GetReport)
			protected.GET("/analytics/seasonal/transition", seasonalHandler.GetTransitionAlert)

			// Item routes
			protected.GET("/items/:id/resale-estimate", resaleHandler.EstimateResale)

			// Trip routes
			protected.POST("/trips/packing-list", tripsHandler.BuildPackingList)

			// Preference routes
			protected.GET("/preferences/neglect-threshold", preferencesHandler.GetNeglectThreshold)
			protected.PUT("/preferences/neglect-threshold", preferencesHandler.SetNeglectThreshold)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
