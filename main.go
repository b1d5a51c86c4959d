package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"furnishop/config"
	"furnishop/controllers"
	"furnishop/database"
	"furnishop/kafka"
	"furnishop/logger"
	"furnishop/middleware"
	"furnishop/models"
	awspkg "furnishop/pkg/aws"
	"furnishop/repository"
	"furnishop/routes"
	"furnishop/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer func() { _ = zap.L().Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Postgres holds users and transactions
	db, err := database.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		zap.L().Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		zap.L().Fatal("Migration failed", zap.Error(err))
	}

	// Mongo holds the product catalog
	if err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDB); err != nil {
		zap.L().Fatal("Could not connect to MongoDB", zap.Error(err))
	}
	defer func() { _ = database.CloseMongo() }()

	// Redis holds carts
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("Could not connect to Redis", zap.Error(err))
	}

	producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	defer func() { _ = producer.Close() }()

	// SNS mirror is optional; events still flow through Kafka without it
	var snsPublisher services.ISNSPublisher
	if cfg.SNSTopicArn != "" {
		awsCfg, err := awspkg.LoadAWSConfig(context.Background())
		if err != nil {
			zap.L().Fatal("Failed to load AWS config", zap.Error(err))
		}
		snsPublisher = awspkg.NewSNSClient(awsCfg)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(database.Mongo)
	transactionRepo := repository.NewTransactionRepository(db)
	cartRepo := repository.NewCartRepository(redisClient, cfg.CartTTL)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	checkoutService := services.NewCheckoutService(transactionRepo, cartRepo, producer, snsPublisher, cfg.SNSTopicArn)

	userController := controllers.NewUserController(authService)
	productController := controllers.NewProductController(productService)
	cartController := controllers.NewCartController(cartService, checkoutService)
	transactionController := controllers.NewTransactionController(checkoutService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.Register(router, tokenService, userController, productController, cartController, transactionController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zap.L().Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("Shutdown error", zap.Error(err))
	}
	zap.L().Info("Server shutdown complete")
}
