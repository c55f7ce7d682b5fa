package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/document"
)

type furnitureRepository struct {
	w writer
}

func NewFurnitureRepository(collection *mongo.Collection) *furnitureRepository {
	return &furnitureRepository{w: newWriter(collection)}
}

func (r *furnitureRepository) Create(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "mongodb.furniture.Create"

	id, err := r.w.insert(ctx, furnitureDoc(item))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *furnitureRepository) UpsertByName(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "mongodb.furniture.UpsertByName"

	doc := furnitureDoc(item)
	id, err := r.w.upsertByName(ctx, item.Name, doc, doc.Unset())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// furnitureDoc leaves timestamps to the update operators.
func furnitureDoc(item *model.FurnitureItem) *document.Furniture {
	doc := document.FurnitureFromModel(item)
	doc.CreatedAt, doc.UpdatedAt = nil, nil
	return doc
}
