package http

import (
	"github.com/gin-gonic/gin"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

type Handlers struct {
	Carbon      *CarbonHandler
	Marketplace *MarketplaceHandler
	User        *UserHandler
	Recommend   *RecommendHandler
	Auth        *AuthHandler
	Info        *InfoHandler
}

func NewRouter(handlers Handlers, authMiddleware gin.HandlerFunc, metrics *HTTPMetrics, logger logging.Logger) *gin.Engine {
	RegisterWalletValidator()

	router := gin.New()
	router.Use(NewRecoveryMiddleware(logger), NewAccessLogMiddleware(logger), metrics.Middleware())
	router.NoRoute(NotFound)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Info.Health)
		api.GET("/info", handlers.Info.Info)
		api.POST("/auth", handlers.Auth.Authenticate)

		carbon := api.Group("/carbon")
		{
			carbon.POST("/calculate", handlers.Carbon.Calculate)
			carbon.POST("/calculate/batch", handlers.Carbon.CalculateBatch)
			carbon.POST("/estimate", handlers.Carbon.Estimate)
			carbon.GET("/gpu-types", handlers.Carbon.GPUTypes)
			carbon.GET("/regions", handlers.Carbon.Regions)
		}

		marketplace := api.Group("/marketplace")
		{
			marketplace.GET("/listings", handlers.Marketplace.BrowseListings)
			marketplace.GET("/listing/:"+listingIDParamKey, handlers.Marketplace.GetListing)

			authenticated := marketplace.Group("", authMiddleware)
			{
				authenticated.POST("/list", handlers.Marketplace.CreateListing)
				authenticated.POST("/buy", handlers.Marketplace.Buy)
				authenticated.DELETE("/listing/:"+listingIDParamKey, handlers.Marketplace.CancelListing)
			}
		}

		user := api.Group("/user/:" + walletParamKey)
		{
			user.GET("/transactions", handlers.User.Transactions)
			user.GET("/stats", handlers.User.Stats)
			user.GET("/listings", handlers.User.Listings)
		}

		api.POST("/recommend/purchase", handlers.Recommend.RecommendPurchase)
	}

	return router
}
