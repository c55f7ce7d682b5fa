package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Names are not unique: append mode writes duplicates on purpose.
func EnsureFurnitureIndexes(ctx context.Context, coll *mongo.Collection) error {
	const op = "mongodb.EnsureFurnitureIndexes"

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}, options.CreateIndexes())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func EnsureCategoryIndexes(ctx context.Context, coll *mongo.Collection) error {
	const op = "mongodb.EnsureCategoryIndexes"

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}, options.CreateIndexes())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
