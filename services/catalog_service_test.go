package services

import (
	"context"
	"testing"
	"time"

	"topgames-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock Store ---
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Product, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductStore) FindSorted(ctx context.Context, filter bson.M, limit int64, sortField string, sortDir int) ([]models.Product, error) {
	args := m.Called(ctx, filter, limit, sortField, sortDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductStore) Insert(ctx context.Context, product *models.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func makeProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: primitive.NewObjectID(), Title: "p"}
	}
	return products
}

// --- Tests ---

func TestBuildListFilter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildListFilter("", ""))
	})

	t.Run("category only", func(t *testing.T) {
		filter := buildListFilter("carte", "")
		assert.Equal(t, bson.M{"category": "carte"}, filter)
	})

	t.Run("free text only", func(t *testing.T) {
		filter := buildListFilter("", "zelda")
		assert.NotContains(t, filter, "category")

		or, ok := filter["$or"].(bson.A)
		assert.True(t, ok)
		assert.Len(t, or, 3)
		assert.Equal(t, bson.M{"title": bson.M{"$regex": "zelda", "$options": "i"}}, or[0])
		assert.Equal(t, bson.M{"description": bson.M{"$regex": "zelda", "$options": "i"}}, or[1])
		assert.Equal(t, bson.M{"tags": bson.M{"$elemMatch": bson.M{"$regex": "zelda", "$options": "i"}}}, or[2])
	})

	t.Run("category and free text combine with AND", func(t *testing.T) {
		filter := buildListFilter("videogiochi", "mario")
		assert.Equal(t, "videogiochi", filter["category"])
		assert.Contains(t, filter, "$or")
	})

	t.Run("regex metacharacters are escaped", func(t *testing.T) {
		filter := buildListFilter("", "c++ (used)")
		or := filter["$or"].(bson.A)
		title := or[0].(bson.M)["title"].(bson.M)
		assert.Equal(t, `c\+\+ \(used\)`, title["$regex"])
	})
}

func TestListProducts(t *testing.T) {
	t.Run("store unavailable returns empty, not error", func(t *testing.T) {
		svc := NewCatalogService(nil)

		products, err := svc.ListProducts(context.Background(), ListProductsParams{Limit: 12})

		assert.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("passes filter and limit to the store", func(t *testing.T) {
		store := new(MockProductStore)
		svc := NewCatalogService(store)

		expected := makeProducts(2)
		store.On("Find", mock.Anything, bson.M{"category": "gadget"}, int64(12)).Return(expected, nil).Once()

		products, err := svc.ListProducts(context.Background(), ListProductsParams{Category: "gadget", Limit: 12})

		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		store.AssertExpectations(t)
	})
}

func TestFeaturedProducts(t *testing.T) {
	t.Run("store unavailable returns empty", func(t *testing.T) {
		svc := NewCatalogService(nil)

		products, err := svc.FeaturedProducts(context.Background(), 8)

		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("backfills with most recent when tagged products run short", func(t *testing.T) {
		store := new(MockProductStore)
		svc := NewCatalogService(store)

		featured := makeProducts(3)
		recent := makeProducts(5)
		store.On("Find", mock.Anything, bson.M{"tags": "featured"}, int64(8)).Return(featured, nil).Once()
		store.On("FindSorted", mock.Anything, bson.M{}, int64(5), "created_at", -1).Return(recent, nil).Once()

		products, err := svc.FeaturedProducts(context.Background(), 8)

		assert.NoError(t, err)
		assert.Len(t, products, 8)
		// Curated items come first, in the store's natural order.
		assert.Equal(t, featured, products[:3])
		assert.Equal(t, recent, products[3:])
		store.AssertExpectations(t)
	})

	t.Run("skips fallback when phase one fills the limit", func(t *testing.T) {
		store := new(MockProductStore)
		svc := NewCatalogService(store)

		store.On("Find", mock.Anything, bson.M{"tags": "featured"}, int64(4)).Return(makeProducts(4), nil).Once()

		products, err := svc.FeaturedProducts(context.Background(), 4)

		assert.NoError(t, err)
		assert.Len(t, products, 4)
		store.AssertNotCalled(t, "FindSorted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("truncates defensively when the store over-returns", func(t *testing.T) {
		store := new(MockProductStore)
		svc := NewCatalogService(store)

		store.On("Find", mock.Anything, bson.M{"tags": "featured"}, int64(3)).Return(makeProducts(2), nil).Once()
		store.On("FindSorted", mock.Anything, bson.M{}, int64(1), "created_at", -1).Return(makeProducts(2), nil).Once()

		products, err := svc.FeaturedProducts(context.Background(), 3)

		assert.NoError(t, err)
		assert.Len(t, products, 3)
	})
}

func TestCreateProduct(t *testing.T) {
	t.Run("store unavailable fails with ErrStoreUnavailable", func(t *testing.T) {
		svc := NewCatalogService(nil)

		id, err := svc.CreateProduct(context.Background(), ProductCreateRequest{Title: "t", Category: "carte"})

		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.Empty(t, id)
	})

	t.Run("assigns created_at and passes commerce fields through", func(t *testing.T) {
		store := new(MockProductStore)
		svc := NewCatalogService(store)

		var inserted *models.Product
		store.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			inserted = p
			return true
		})).Return("66f0c0ffee0000000000aaaa", nil).Once()

		req := ProductCreateRequest{
			Title:    "Pokemon Scarlatto",
			Category: "videogiochi",
			Tags:     []string{"switch", "featured"},
			Extra:    map[string]interface{}{"price": 49.99, "stock": 3},
		}

		id, err := svc.CreateProduct(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "66f0c0ffee0000000000aaaa", id)
		assert.True(t, inserted.ID.IsZero(), "id is assigned by the store, never by the caller")
		assert.WithinDuration(t, time.Now().UTC(), inserted.CreatedAt, 2*time.Second)
		assert.Nil(t, inserted.UpdatedAt)
		assert.Equal(t, 49.99, inserted.Extra["price"])
		store.AssertExpectations(t)
	})
}
