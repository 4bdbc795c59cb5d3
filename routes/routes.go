package routes

import (
	"storefront/controllers"
	"storefront/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine,
	catalog *services.CatalogService,
	campaigns *services.CampaignService,
	cart *services.CartService,
	checkout *services.CheckoutService,
	reviews *services.ReviewService,
) {
	catalogCtrl := controllers.NewCatalogController(catalog)
	campaignCtrl := controllers.NewCampaignController(campaigns)
	cartCtrl := controllers.NewCartController(cart, catalog)
	checkoutCtrl := controllers.NewCheckoutController(checkout)
	reviewCtrl := controllers.NewReviewController(reviews)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/catalog", catalogCtrl.Browse)
	router.GET("/catalog/categories", catalogCtrl.Categories)
	router.GET("/products/:id", catalogCtrl.ProductDetail)

	router.GET("/campaigns", campaignCtrl.GetAllCampaigns)
	router.POST("/campaigns", campaignCtrl.CreateCampaign)

	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", cartCtrl.GetCart)
		cartGroup.POST("", cartCtrl.AddToCart)
		cartGroup.DELETE("", cartCtrl.ClearCart)
		cartGroup.GET("/summary", cartCtrl.Summary)
		cartGroup.PATCH("/:id/quantity", cartCtrl.UpdateQuantity)
		cartGroup.PATCH("/:id/note", cartCtrl.UpdateNote)
		cartGroup.DELETE("/:id", cartCtrl.RemoveItem)
	}

	checkoutGroup := router.Group("/checkout")
	{
		checkoutGroup.GET("", checkoutCtrl.State)
		checkoutGroup.POST("", checkoutCtrl.Begin)
		checkoutGroup.DELETE("", checkoutCtrl.Cancel)
		checkoutGroup.POST("/confirm", checkoutCtrl.Confirm)
		checkoutGroup.POST("/acknowledge", checkoutCtrl.Acknowledge)
	}

	router.GET("/reviews", reviewCtrl.GetReviews)
	router.POST("/reviews", reviewCtrl.AddReview)
}
