package firestoredb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/document"
)

type furnitureRepository struct {
	w writer
}

func NewFurnitureRepository(client *firestore.Client, collection string) *furnitureRepository {
	return &furnitureRepository{w: newWriter(client, collection)}
}

func (r *furnitureRepository) Create(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "firestoredb.furniture.Create"

	id, err := r.w.add(ctx, newFurnitureDoc(item, time.Time{}))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *furnitureRepository) UpsertByName(ctx context.Context, item *model.FurnitureItem) (string, error) {
	const op = "firestoredb.furniture.UpsertByName"

	id, err := r.w.upsert(ctx, item.Name, func(createdAt time.Time) any {
		return newFurnitureDoc(item, createdAt)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func newFurnitureDoc(item *model.FurnitureItem, createdAt time.Time) *furnitureDoc {
	return &furnitureDoc{Furniture: *document.FurnitureFromModel(item), CreatedAt: createdAt}
}

type categoryRepository struct {
	w writer
}

func NewCategoryRepository(client *firestore.Client, collection string) *categoryRepository {
	return &categoryRepository{w: newWriter(client, collection)}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) (string, error) {
	const op = "firestoredb.category.Create"

	id, err := r.w.add(ctx, newCategoryDoc(c, time.Time{}))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *categoryRepository) UpsertByName(ctx context.Context, c *model.Category) (string, error) {
	const op = "firestoredb.category.UpsertByName"

	id, err := r.w.upsert(ctx, c.Name, func(createdAt time.Time) any {
		return newCategoryDoc(c, createdAt)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func newCategoryDoc(c *model.Category, createdAt time.Time) *categoryDoc {
	return &categoryDoc{Category: *document.CategoryFromModel(c), CreatedAt: createdAt}
}
