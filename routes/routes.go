package routes

import (
	"net/http"

	"nexzen-backend/config"
	"nexzen-backend/controllers"
	"nexzen-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configures and returns the gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.MaxMultipartMemory = cfg.MaxMultipartMemory

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		product := api.Group("/product")
		product.GET("", ctrl.ListProducts)
		product.POST("", ctrl.AddProduct)
		product.GET("/:id", ctrl.GetProduct)
		product.PUT("/:id", ctrl.UpdateProduct)
		product.DELETE("/:id", ctrl.RemoveProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Endpoint not found"})
	})
	return r
}
