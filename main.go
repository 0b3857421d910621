package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/config"
	"github.com/CardozoMartin/distri-back/controllers"
	"github.com/CardozoMartin/distri-back/database"
	"github.com/CardozoMartin/distri-back/middleware"
	"github.com/CardozoMartin/distri-back/notifier"
	"github.com/CardozoMartin/distri-back/repository"
	"github.com/CardozoMartin/distri-back/routes"
	"github.com/CardozoMartin/distri-back/services"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg := config.Load()

	mongoClient, db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		if err := database.DisconnectMongo(mongoClient); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	// Redis is optional: the catalog works without the cache.
	var drinkCache *services.DrinkCache
	if redisClient, err := database.ConnectRedis(cfg.RedisURL); err != nil {
		logger.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
	} else {
		drinkCache = services.NewDrinkCache(redisClient, 10*time.Minute, logger)
		logger.Info("Connected to Redis")
	}

	// Notifications are best effort: a missing SMTP or Twilio setup only
	// disables that channel.
	var notifiers notifier.Multi
	if email, err := notifier.NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, logger); err != nil {
		logger.Warn("Email notifications disabled", zap.Error(err))
	} else {
		notifiers = append(notifiers, email)
	}
	if wa, err := notifier.NewWhatsAppNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsApp, logger); err != nil {
		logger.Warn("WhatsApp notifications disabled", zap.Error(err))
	} else {
		notifiers = append(notifiers, wa)
	}

	drinkRepo := repository.NewMongoDrinkRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	brandRepo := repository.NewMongoBrandRepository(db)
	customerRepo := repository.NewMongoCustomerRepository(db)
	employeeRepo := repository.NewMongoEmployeeRepository(db)

	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret)
	drinkService := services.NewDrinkService(drinkRepo, drinkCache, logger)
	cartService := services.NewCartService(cartRepo, drinkRepo, drinkCache, notifiers, logger)
	brandService := services.NewBrandService(brandRepo, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, logger)

	ctrl := routes.Controllers{
		Carts:     controllers.NewCartController(cartService),
		Drinks:    controllers.NewDrinkController(drinkService),
		Brands:    controllers.NewBrandController(brandService),
		Customers: controllers.NewCustomerController(customerService),
		Employees: controllers.NewEmployeeController(employeeService),
		Login:     controllers.NewLoginController(authService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RateLimit())
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(router, ctrl, authService)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
