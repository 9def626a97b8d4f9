package repository

import (
	"context"

	"topgames-api/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductStore defines the store operations used by the catalog service.
// It sticks to plain filter/limit primitives to make swapping adapters easier.
type ProductStore interface {
	// Find returns up to limit products matching filter in natural order.
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.Product, error)
	// FindSorted is the ordered variant used for fallback queries.
	FindSorted(ctx context.Context, filter bson.M, limit int64, sortField string, sortDir int) ([]models.Product, error)
	// Insert persists a product and returns the store-assigned id as a string.
	Insert(ctx context.Context, product *models.Product) (string, error)
}
