package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/service/mocks"
	"github.com/you-humble/assembly-seeder/platform/logger"
)

func fakeCatalog() *model.Catalog {
	return &model.Catalog{
		Version: gofakeit.AppVersion(),
		Furniture: []model.FurnitureItem{
			{Name: gofakeit.ProductName(), Difficulty: model.DifficultyEasy},
			{Name: gofakeit.ProductName(), Difficulty: model.DifficultyHard, EstimatedTime: 5},
		},
		Categories: []model.Category{
			{Name: gofakeit.Noun(), Icon: gofakeit.Word(), Order: 1},
			{Name: gofakeit.Noun(), Icon: gofakeit.Word(), Order: 2},
		},
	}
}

func TestServiceRun(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	type deps struct {
		furniture  *mocks.MockFurnitureRepository
		categories *mocks.MockCategoryRepository
	}

	type testCase struct {
		name   string
		opts   Options
		ctx    func() context.Context
		setup  func(d deps, c *model.Catalog)
		assert func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog)
	}

	dbErr := errors.New("db write failed")

	tests := []testCase{
		{
			name: "success: append writes everything in order",
			setup: func(d deps, c *model.Catalog) {
				d.furniture.On("Create", mock.Anything, &c.Furniture[0]).Return("f-1", nil).Once()
				d.furniture.On("Create", mock.Anything, &c.Furniture[1]).Return("f-2", nil).Once()
				d.categories.On("Create", mock.Anything, &c.Categories[0]).Return("c-1", nil).Once()
				d.categories.On("Create", mock.Anything, &c.Categories[1]).Return("c-2", nil).Once()
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.NoError(t, err)
				assert.NotEmpty(t, rep.RunID)
				assert.Equal(t, model.SeedModeAppend, rep.Mode)
				assert.Equal(t, c.Version, rep.CatalogVersion)
				assert.Equal(t, 2, rep.FurnitureWritten())
				assert.Equal(t, 2, rep.CategoriesWritten())
				assert.Zero(t, rep.Failed())

				assert.Equal(t, []string{"f-1", "f-2"}, []string{rep.Furniture[0].ID, rep.Furniture[1].ID})
				assert.Equal(t, c.Categories[1].Name, rep.Categories[1].Name)
				assert.Equal(t, model.CollectionCategories, rep.Categories[1].Collection)
				d.furniture.AssertNotCalled(t, "UpsertByName", mock.Anything, mock.Anything)
			},
		},
		{
			name: "upsert mode",
			opts: Options{Mode: model.SeedModeUpsert},
			setup: func(d deps, c *model.Catalog) {
				d.furniture.On("UpsertByName", mock.Anything, mock.Anything).Return("f", nil).Twice()
				d.categories.On("UpsertByName", mock.Anything, mock.Anything).Return("c", nil).Twice()
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.NoError(t, err)
				assert.Equal(t, model.SeedModeUpsert, rep.Mode)
				assert.Equal(t, 4, rep.Written())
				d.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "write error stops the run before categories",
			setup: func(d deps, c *model.Catalog) {
				d.furniture.On("Create", mock.Anything, &c.Furniture[0]).Return("f-1", nil).Once()
				d.furniture.On("Create", mock.Anything, &c.Furniture[1]).Return("", dbErr).Once()
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrWrite)
				assert.ErrorIs(t, err, dbErr)
				assert.ErrorContains(t, err, c.Furniture[1].Name)

				require.Len(t, rep.Furniture, 2)
				assert.True(t, rep.Furniture[0].OK())
				assert.False(t, rep.Furniture[1].OK())
				assert.Empty(t, rep.Furniture[1].ID)
				assert.Empty(t, rep.Categories)
				d.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "continue on error records every failure",
			opts: Options{ContinueOnError: true},
			setup: func(d deps, c *model.Catalog) {
				d.furniture.On("Create", mock.Anything, &c.Furniture[0]).Return("", dbErr).Once()
				d.furniture.On("Create", mock.Anything, &c.Furniture[1]).Return("f-2", nil).Once()
				d.categories.On("Create", mock.Anything, &c.Categories[0]).Return("c-1", nil).Once()
				d.categories.On("Create", mock.Anything, &c.Categories[1]).Return("", dbErr).Once()
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrWrite)
				assert.Equal(t, 4, rep.Attempted())
				assert.Equal(t, 2, rep.Written())
				assert.Equal(t, 2, rep.Failed())
				assert.ErrorContains(t, err, c.Furniture[0].Name)
				assert.ErrorContains(t, err, c.Categories[1].Name)
			},
		},
		{
			name: "canceled context writes nothing",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.Error(t, err)
				assert.ErrorIs(t, err, context.Canceled)
				assert.Zero(t, rep.Attempted())
				d.furniture.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "each write gets a deadline",
			opts: Options{WriteTimeout: time.Minute},
			setup: func(d deps, c *model.Catalog) {
				hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
					_, ok := ctx.Deadline()
					return ok
				})
				d.furniture.On("Create", hasDeadline, mock.Anything).Return("f", nil).Twice()
				d.categories.On("Create", hasDeadline, mock.Anything).Return("c", nil).Twice()
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.NoError(t, err)
				assert.Equal(t, 4, rep.Written())
			},
		},
		{
			name: "concurrent writes keep catalog order",
			opts: Options{Concurrency: 4},
			setup: func(d deps, c *model.Catalog) {
				d.furniture.On("Create", mock.Anything, &c.Furniture[0]).
					After(20*time.Millisecond).Return("f-1", nil).Once()
				d.furniture.On("Create", mock.Anything, &c.Furniture[1]).Return("f-2", nil).Once()
				d.categories.On("Create", mock.Anything, &c.Categories[0]).
					After(20*time.Millisecond).Return("c-1", nil).Once()
				d.categories.On("Create", mock.Anything, &c.Categories[1]).Return("c-2", nil).Once()
			},
			assert: func(t *testing.T, rep model.Report, err error, d deps, c *model.Catalog) {
				require.NoError(t, err)
				require.Len(t, rep.Furniture, 2)
				assert.Equal(t, 0, rep.Furniture[0].Index)
				assert.Equal(t, "f-1", rep.Furniture[0].ID)
				assert.Equal(t, "c-2", rep.Categories[1].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				furniture:  mocks.NewMockFurnitureRepository(t),
				categories: mocks.NewMockCategoryRepository(t),
			}
			c := fakeCatalog()
			if tt.setup != nil {
				tt.setup(d, c)
			}

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			svc := NewSeederService(d.furniture, d.categories, c, tt.opts)
			rep, err := svc.Run(ctx)
			tt.assert(t, rep, err, d, c)
		})
	}
}

func TestNewSeederServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := NewSeederService(nil, nil, &model.Catalog{}, Options{Concurrency: -3})
	assert.Equal(t, model.SeedModeAppend, svc.opts.Mode)
	assert.Equal(t, 1, svc.opts.Concurrency)
	assert.Equal(t, defaultWriteTimeout, svc.opts.WriteTimeout)
}
