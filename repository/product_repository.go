package repository

import (
	"context"

	"topgames-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("product"),
	}
}

func (r *ProductRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Product, error) {
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

func (r *ProductRepository) FindSorted(ctx context.Context, filter bson.M, limit int64, sortField string, sortDir int) ([]models.Product, error) {
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: sortField, Value: sortDir}})
	return r.find(ctx, filter, findOptions)
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) (string, error) {
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
