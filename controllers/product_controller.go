package controllers

import (
	"errors"
	"net/http"

	"topgames-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// listProductsQuery rejects out-of-range limits at the binding boundary
// instead of clamping them.
type listProductsQuery struct {
	Category string `form:"category"`
	Q        string `form:"q"`
	Limit    int64  `form:"limit,default=12" binding:"min=1,max=50"`
}

type featuredQuery struct {
	Limit int64 `form:"limit,default=8" binding:"min=1,max=12"`
}

// createProductRequest models the fields the catalog understands. Everything
// else in the payload passes through to the document as-is.
type createProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
}

// toServiceRequest splits the raw payload into modeled fields and the
// passthrough map. Server-assigned keys are dropped so clients can never
// supply an identifier or timestamps.
func (r *createProductRequest) toServiceRequest(raw map[string]interface{}) services.ProductCreateRequest {
	extra := make(map[string]interface{})
	for k, v := range raw {
		switch k {
		case "title", "description", "category", "tags", "id", "_id", "created_at", "updated_at":
		default:
			extra[k] = v
		}
	}
	return services.ProductCreateRequest{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Tags:        r.Tags,
		Extra:       extra,
	}
}

type ProductController struct {
	service CatalogServiceAPI
	cache   *CacheManager
}

func NewProductController(service CatalogServiceAPI, cache *CacheManager) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// GetProducts lists products with the optional category and free-text filters.
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	var query listProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	params := services.ListProductsParams{
		Category: query.Category,
		Q:        query.Q,
		Limit:    query.Limit,
	}

	if cached, ok := ctrl.cache.GetProductList(c.Request.Context(), params); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := ctrl.service.ListProducts(c.Request.Context(), params)
	if err != nil {
		zap.L().Error("Error finding products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	response := shapeProducts(products)
	ctrl.cache.SetProductListAsync(params, response)

	c.JSON(http.StatusOK, response)
}

// GetFeaturedProducts returns featured-tagged products first, backfilled with
// the most recent arrivals.
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	var query featuredQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	products, err := ctrl.service.FeaturedProducts(c.Request.Context(), query.Limit)
	if err != nil {
		zap.L().Error("Error finding featured products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
		return
	}

	c.JSON(http.StatusOK, shapeProducts(products))
}

// CreateProduct inserts a new product and returns only the assigned id.
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var req createProductRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	id, err := ctrl.service.CreateProduct(c.Request.Context(), req.toServiceRequest(raw))
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database non disponibile"})
			return
		}
		zap.L().Error("Failed to insert product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}

	if err := ctrl.cache.Invalidate(c.Request.Context()); err != nil {
		zap.L().Warn("Failed to invalidate product cache", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
