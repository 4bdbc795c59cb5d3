package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"storefront/config"
	_ "storefront/docs"
	"storefront/middleware"
	"storefront/models"
	"storefront/poller"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	remote := repositories.NewRemote(config.AppConfig.StoreURL, config.AppConfig.StoreTimeout)
	productRepo := repositories.NewProductRepository(remote)
	campaignRepo := repositories.NewCampaignRepository(remote)
	cartRepo := repositories.NewCartRepository(remote)

	catalogSvc := services.NewCatalogService(productRepo, campaignRepo)
	campaignSvc := services.NewCampaignService(campaignRepo)
	cartSvc := services.NewCartService(cartRepo)
	checkoutSvc := services.NewCheckoutService(cartSvc)
	reviewSvc := services.NewReviewService(productRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := cartSvc.Load(ctx); err != nil {
		log.Printf("Initial cart load failed, will retry on next poll: %v", err)
	}

	summaryPoller := poller.New(cartSvc, config.AppConfig.PollInterval)
	go summaryPoller.Run(ctx)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, catalogSvc, campaignSvc, cartSvc, checkoutSvc, reviewSvc)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
