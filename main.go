package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"restaurant-backend/internal/booking"
	"restaurant-backend/internal/cart"
	"restaurant-backend/internal/catalog"
	"restaurant-backend/internal/config"
	"restaurant-backend/internal/handlers"
	"restaurant-backend/internal/kafka"
	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/middleware"
	rediswrap "restaurant-backend/internal/redis"
	"restaurant-backend/internal/session"
	"restaurant-backend/internal/storage"
)

// Global logger instance
var log *logger.Logger

func main() {
	log = logger.NewLogger()
	defer log.Close()

	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	log.LogProcess("STARTUP", "Restaurant backend starting up...")

	cfg := config.Load()
	log.Info("CONFIG", "Configuration loaded successfully")

	// The backend pair is chosen exactly once here and injected everywhere.
	var (
		catalogStore storage.CatalogStore
		bookingStore storage.BookingStore
	)
	if cfg.RemoteEnabled() {
		log.LogProcess("DATABASE", "Remote mode: connecting to hosted Postgres...")
		pg, err := storage.NewPostgresStore(context.Background(), cfg.RemoteDB, log)
		if err != nil {
			log.Fatal("DATABASE", "Failed to initialize Postgres: "+err.Error())
		}
		defer pg.Close()
		catalogStore = pg
		bookingStore = pg
	} else {
		log.LogProcess("DATABASE", "Local mode: using JSON catalog and SQLite bookings")
		catalogStore = storage.NewFileCatalogStore(cfg.Local.MenuDataPath, catalog.DefaultCategories(), log)
		sqlite, err := storage.NewSQLiteBookingStore(cfg.Local.BookingsDBPath, log)
		if err != nil {
			log.Fatal("DATABASE", "Failed to initialize SQLite: "+err.Error())
		}
		defer sqlite.Close()
		bookingStore = sqlite
	}

	catalogSvc := catalog.NewService(catalogStore, cfg.RemoteEnabled(), log)

	// Session carts live in redis when configured, in process memory
	// otherwise.
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.Redis.Addr})
		sessions = session.NewRedisStore(redisClient, log)
		catalogSvc.SetSeedLock(rediswrap.NewRedis(redisClient))
		log.LogProcess("SESSION", "Redis session store initialized")
	} else {
		sessions = session.NewMemoryStore()
		log.LogProcess("SESSION", "In-memory session store initialized")
	}

	log.LogProcess("KAFKA", "Initializing booking event producer...")
	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix, log)
	if err != nil {
		log.Fatal("KAFKA", "Failed to create producer: "+err.Error())
	}
	defer producer.Close()

	engine := cart.NewEngine(catalogSvc)
	bookingSvc := booking.NewService(bookingStore, engine, producer, log)
	log.LogProcess("SERVICE", "Catalog, cart and booking services initialized")

	menuHandler := handlers.NewMenuHandler(catalogSvc, engine, sessions)
	cartHandler := handlers.NewCartHandler(engine, sessions)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, engine, sessions)
	adminHandler := handlers.NewAdminHandler(catalogSvc, bookingSvc)
	log.LogProcess("HANDLER", "All handlers initialized")

	router := setupRouter(menuHandler, cartHandler, bookingHandler, adminHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.LogProcess("SERVER", "Starting HTTP server on port "+cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "Server failed to start: "+err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("SHUTDOWN", "Received shutdown signal, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", "Server forced to shutdown: "+err.Error())
	}

	log.Info("SHUTDOWN", "Restaurant backend shutdown completed")
}

func setupRouter(menu *handlers.MenuHandler, cartH *handlers.CartHandler, bookingH *handlers.BookingHandler, admin *handlers.AdminHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(log))
	router.Use(middleware.SecurityHeaders())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"service":   "restaurant-backend",
		})
	})

	router.GET("/menu", menu.GetMenu)
	router.GET("/dish/:id", menu.GetDish)

	router.GET("/cart", cartH.GetCart)
	router.POST("/cart", cartH.UpdateCart)

	router.GET("/booking", bookingH.GetBookingPage)
	router.POST("/booking", bookingH.SubmitBooking)

	adminGroup := router.Group("/admin")
	{
		adminGroup.POST("/categories", admin.CreateCategory)
		adminGroup.POST("/menu/items", admin.CreateMenuItem)
		adminGroup.GET("/bookings", admin.ListBookings)
		adminGroup.GET("/bookings/:id", admin.GetBooking)
	}

	log.LogProcess("ROUTER", "All routes registered successfully")
	return router
}
