// Package store persists product documents in MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"

	"nexzen-backend/models"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const productCollectionName = "products"

type MongoProductStore struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{db: db, collection: db.Collection(productCollectionName)}
}

// Create casts doc into a product and inserts it.
func (s *MongoProductStore) Create(ctx context.Context, doc models.Document) (*models.Product, error) {
	product, err := BuildProduct(doc)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	log.Ctx(ctx).Debug().Str("component", "ProductStore").Str("id", product.ID.Hex()).Msg("inserted product")
	return &product, nil
}

func (s *MongoProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// FindByID returns nil without error when no product has the id.
func (s *MongoProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// UpdateByID applies patch and returns the updated product, or nil when no
// product has the id.
func (s *MongoProductStore) UpdateByID(ctx context.Context, id string, patch models.Document) (*models.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set, err := BuildUpdate(patch)
	if err != nil {
		return nil, err
	}
	// MongoDB rejects an empty $set.
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &product, nil
}

// DeleteByID removes the product and returns it, or nil when none matched.
func (s *MongoProductStore) DeleteByID(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &product, nil
}

func (s *MongoProductStore) Stats(ctx context.Context) (models.Stats, error) {
	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Stats{}, fmt.Errorf("count products: %w", err)
	}
	bestsellers, err := s.collection.CountDocuments(ctx, bson.M{"bestseller": true})
	if err != nil {
		return models.Stats{}, fmt.Errorf("count bestsellers: %w", err)
	}
	return models.Stats{TotalProducts: total, Bestsellers: bestsellers}, nil
}

func (s *MongoProductStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &CastError{Kind: "ObjectId", Path: "_id", Value: id}
	}
	return objectID, nil
}
