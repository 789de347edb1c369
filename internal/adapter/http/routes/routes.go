package routes

import (
	"context"
	"log"
	"os"

	_ "beachrent/docs" // This will be auto-generated
	"beachrent/config"
	"beachrent/internal/adapter/http/handlers"
	repository2 "beachrent/internal/adapter/persistence/repository"
	"beachrent/internal/infrastructure/cache"
	"beachrent/internal/infrastructure/database"
	"beachrent/internal/infrastructure/payments"
	"beachrent/internal/infrastructure/platform"
	"beachrent/internal/usecase"
	"beachrent/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig(getenvDefault("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(context.Background())

	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	beachCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.BeachesCacheTTL())
	platformClient := platform.NewClient(cfg.Platform)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	beachUseCase := usecase.NewBeachUseCase(platformClient, beachCache)
	flowUseCase := usecase.NewBookingFlowUseCase(sessionRepo, beachUseCase)
	orderUseCase := usecase.NewOrderUseCase(sessionRepo, platformClient, beachUseCase, flowUseCase)
	authUseCase := usecase.NewAuthUseCase(sessionRepo, platformClient)
	paymentUseCase := usecase.NewPaymentUseCase(sessionRepo, beachUseCase, paymentGateway, cfg.Booking.Currency)

	flowHandler := handlers.NewBookingFlowHandler(flowUseCase)
	beachHandler := handlers.NewBeachHandler(beachUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, usecase.NewCountdownTicker(cfg.Booking.CountdownTick()))
	authHandler := handlers.NewAuthHandler(authUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRentalRoutes(v1, flowHandler, beachHandler, orderHandler, authHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
