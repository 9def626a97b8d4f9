package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeaturedTag marks a product for the curated storefront section.
const FeaturedTag = "featured"

// Product is a document in the "product" collection. Commerce fields the API
// does not model (price, stock, variants, ...) ride along in Extra and are
// returned to clients untouched.
type Product struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty"`
	Title       string                 `bson:"title"`
	Description string                 `bson:"description"`
	Category    string                 `bson:"category"`
	Tags        []string               `bson:"tags,omitempty"`
	CreatedAt   time.Time              `bson:"created_at,omitempty"`
	UpdatedAt   *time.Time             `bson:"updated_at,omitempty"`
	Extra       map[string]interface{} `bson:",inline"`
}

// Public returns the JSON-safe representation served by every read endpoint:
// the ObjectID becomes a plain string id and timestamps are stringified.
func (p *Product) Public() map[string]interface{} {
	out := make(map[string]interface{}, len(p.Extra)+6)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["id"] = p.ID.Hex()
	out["title"] = p.Title
	out["description"] = p.Description
	out["category"] = p.Category
	if p.Tags != nil {
		out["tags"] = p.Tags
	}
	if !p.CreatedAt.IsZero() {
		out["created_at"] = p.CreatedAt.Format(time.RFC3339Nano)
	}
	if p.UpdatedAt != nil {
		out["updated_at"] = p.UpdatedAt.Format(time.RFC3339Nano)
	}
	return out
}
