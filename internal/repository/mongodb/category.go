package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/document"
)

type categoryRepository struct {
	w writer
}

func NewCategoryRepository(collection *mongo.Collection) *categoryRepository {
	return &categoryRepository{w: newWriter(collection)}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) (string, error) {
	const op = "mongodb.category.Create"

	id, err := r.w.insert(ctx, document.CategoryFromModel(c))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *categoryRepository) UpsertByName(ctx context.Context, c *model.Category) (string, error) {
	const op = "mongodb.category.UpsertByName"

	doc := document.CategoryFromModel(c)
	id, err := r.w.upsertByName(ctx, c.Name, doc, doc.Unset())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}
