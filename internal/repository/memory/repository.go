package memory

import (
	"context"
	"fmt"

	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/document"
)

type furnitureRepository struct {
	store      *Store
	collection string
}

func NewFurnitureRepository(store *Store, collection string) *furnitureRepository {
	return &furnitureRepository{store: store, collection: collection}
}

func (r *furnitureRepository) Create(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "memory.furniture.Create"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return r.store.Insert(r.collection, item.Name, *document.FurnitureFromModel(item)), nil
}

func (r *furnitureRepository) UpsertByName(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "memory.furniture.UpsertByName"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id, _ := r.store.Upsert(r.collection, item.Name, *document.FurnitureFromModel(item))
	return id, nil
}

type categoryRepository struct {
	store      *Store
	collection string
}

func NewCategoryRepository(store *Store, collection string) *categoryRepository {
	return &categoryRepository{store: store, collection: collection}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) (string, error) {
	const op = "memory.category.Create"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return r.store.Insert(r.collection, c.Name, *document.CategoryFromModel(c)), nil
}

func (r *categoryRepository) UpsertByName(ctx context.Context, c *model.Category) (string, error) {
	const op = "memory.category.UpsertByName"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id, _ := r.store.Upsert(r.collection, c.Name, *document.CategoryFromModel(c))
	return id, nil
}
