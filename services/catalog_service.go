package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"topgames-api/models"
	"topgames-api/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrStoreUnavailable is returned by write operations when no database
// connection was established at startup.
var ErrStoreUnavailable = errors.New("database not available")

// ListProductsParams defines the filters for listing products.
type ListProductsParams struct {
	Category string
	Q        string
	Limit    int64
}

// ProductCreateRequest is the payload for creating a product. Extra carries
// the unmodeled commerce fields that pass through to the document untouched.
type ProductCreateRequest struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Extra       map[string]interface{}
}

type CatalogService struct {
	products repository.ProductStore
}

// NewCatalogService wires the catalog over the given store. A nil store means
// the database was unreachable at startup: reads return empty results and
// writes fail with ErrStoreUnavailable.
func NewCatalogService(products repository.ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) available() bool {
	return s.products != nil
}

// buildListFilter translates the optional category and free-text parameters
// into a Mongo filter. A category requires an exact match; free text requires
// a case-insensitive substring match on title, description or any tag. Both
// combine with AND.
func buildListFilter(category, q string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if q != "" {
		pattern := regexp.QuoteMeta(q)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"tags": bson.M{"$elemMatch": bson.M{"$regex": pattern, "$options": "i"}}},
		}
	}
	return filter
}

// ListProducts returns up to params.Limit products matching the filters, in
// the store's natural order.
func (s *CatalogService) ListProducts(ctx context.Context, params ListProductsParams) ([]models.Product, error) {
	if !s.available() {
		return []models.Product{}, nil
	}
	return s.products.Find(ctx, buildListFilter(params.Category, params.Q), params.Limit)
}

// FeaturedProducts surfaces curated content first and backfills with the most
// recently created products so the section never looks sparse. The fallback
// query does not exclude phase-one ids, so a featured product that is also
// among the most recent can appear twice.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	if !s.available() {
		return []models.Product{}, nil
	}

	found, err := s.products.Find(ctx, bson.M{"tags": models.FeaturedTag}, limit)
	if err != nil {
		return nil, err
	}
	if int64(len(found)) < limit {
		more, err := s.products.FindSorted(ctx, bson.M{}, limit-int64(len(found)), "created_at", -1)
		if err != nil {
			return nil, err
		}
		found = append(found, more...)
	}
	if int64(len(found)) > limit {
		found = found[:limit]
	}
	return found, nil
}

// CreateProduct inserts the payload with a server-assigned creation time and
// returns the new id. The client never supplies the identifier.
func (s *CatalogService) CreateProduct(ctx context.Context, req ProductCreateRequest) (string, error) {
	if !s.available() {
		return "", ErrStoreUnavailable
	}

	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
		Extra:       req.Extra,
	}
	return s.products.Insert(ctx, product)
}
