package routes

import (
	"topgames-api/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the catalog API.
func RegisterRoutes(r *gin.Engine, products *controllers.ProductController, categories *controllers.CategoryController, health *controllers.HealthController) {
	r.GET("/", health.Root)
	r.GET("/test", health.TestDatabase)

	api := r.Group("/api")
	{
		api.GET("/hello", health.Hello)
		api.GET("/categories", categories.GetCategories)
		api.GET("/products", products.GetProducts)
		api.POST("/products", products.CreateProduct)
		api.GET("/featured", products.GetFeaturedProducts)
	}
}
