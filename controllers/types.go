package controllers

import (
	"context"
	"time"

	"topgames-api/models"
	"topgames-api/services"
)

// Default configuration values
const (
	DefaultCacheTTL       = 10 * time.Minute
	DefaultContextTimeout = 30 * time.Second
)

// CatalogServiceAPI defines the interface for catalog operations used by the
// product controller.
type CatalogServiceAPI interface {
	ListProducts(ctx context.Context, params services.ListProductsParams) ([]models.Product, error)
	FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error)
	CreateProduct(ctx context.Context, req services.ProductCreateRequest) (string, error)
}
