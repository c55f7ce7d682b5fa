package dynamo

import (
	"context"
	"fmt"

	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/document"
)

type furnitureRepository struct {
	w writer
}

func NewFurnitureRepository(api API, table string) *furnitureRepository {
	return &furnitureRepository{w: newWriter(api, table)}
}

func (r *furnitureRepository) Create(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "dynamo.furniture.Create"

	id, err := r.w.put(ctx, document.FurnitureFromModel(item))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *furnitureRepository) UpsertByName(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "dynamo.furniture.UpsertByName"

	doc := document.FurnitureFromModel(item)
	id, err := r.w.upsertByName(ctx, item.Name, doc, doc.Unset())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

type categoryRepository struct {
	w writer
}

func NewCategoryRepository(api API, table string) *categoryRepository {
	return &categoryRepository{w: newWriter(api, table)}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) (string, error) {
	const op = "dynamo.category.Create"

	id, err := r.w.put(ctx, document.CategoryFromModel(c))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *categoryRepository) UpsertByName(ctx context.Context, c *model.Category) (string, error) {
	const op = "dynamo.category.UpsertByName"

	doc := document.CategoryFromModel(c)
	id, err := r.w.upsertByName(ctx, c.Name, doc, doc.Unset())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}
