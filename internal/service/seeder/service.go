package seeder

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/assembly-seeder/internal/catalog"
	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/platform/logger"
)

const defaultWriteTimeout = 10 * time.Second

type FurnitureRepository interface {
	Create(ctx context.Context, item *model.FurnitureItem) (string, error)
	UpsertByName(ctx context.Context, item *model.FurnitureItem) (string, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (string, error)
	UpsertByName(ctx context.Context, c *model.Category) (string, error)
}

type Options struct {
	Mode model.SeedMode
	// Keep writing after a failed record instead of stopping.
	ContinueOnError bool
	// Writes in flight per collection; 1 keeps the run sequential.
	Concurrency  int
	WriteTimeout time.Duration
}

type service struct {
	furniture  FurnitureRepository
	categories CategoryRepository
	catalog    *model.Catalog
	opts       Options
}

func NewSeederService(
	furniture FurnitureRepository,
	categories CategoryRepository,
	c *model.Catalog,
	opts Options,
) *service {
	if opts.Mode == "" {
		opts.Mode = model.SeedModeAppend
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	return &service{
		furniture:  furniture,
		categories: categories,
		catalog:    c,
		opts:       opts,
	}
}

// Run writes every furniture item, then every category, in catalog order.
// The report lists each attempted record, including the ones written before
// a failure stopped the run.
func (s *service) Run(ctx context.Context) (model.Report, error) {
	const op = "seeder.service.Run"

	report := model.Report{
		RunID:          uuid.NewString(),
		Mode:           s.opts.Mode,
		CatalogVersion: s.catalog.Version,
	}
	ctx = logger.WithRunID(ctx, report.RunID)

	logger.Info(ctx, "🌱 Starting database seeding...",
		logger.String("mode", string(s.opts.Mode)),
		logger.String("catalog_version", s.catalog.Version),
		logger.Int("furniture", len(s.catalog.Furniture)),
		logger.Int("categories", len(s.catalog.Categories)),
		logger.Int("concurrency", s.opts.Concurrency),
	)

	for i := range s.catalog.Furniture {
		item := &s.catalog.Furniture[i]
		if drift := catalog.TimeDrift(item); drift != 0 {
			logger.Warn(ctx, "step times do not add up to the estimate",
				logger.String("name", item.Name),
				logger.Int("estimated_time", item.EstimatedTime),
				logger.Int("steps_time", item.StepsTime()),
			)
		}
	}

	logger.Info(ctx, "📦 Adding furniture items...")
	var errs error
	report.Furniture, errs = s.writeAll(ctx, model.CollectionFurniture, len(s.catalog.Furniture), s.writeFurniture)
	if errs != nil && (!s.opts.ContinueOnError || ctx.Err() != nil) {
		s.logSummary(ctx, report)
		return report, fmt.Errorf("%s: %w", op, errs)
	}

	logger.Info(ctx, "📁 Adding categories...")
	var catErrs error
	report.Categories, catErrs = s.writeAll(ctx, model.CollectionCategories, len(s.catalog.Categories), s.writeCategory)
	errs = multierr.Append(errs, catErrs)

	s.logSummary(ctx, report)
	if errs != nil {
		return report, fmt.Errorf("%s: %w", op, errs)
	}

	logger.Info(ctx, "🎉 Database seeding completed successfully!")
	return report, nil
}

type writeFunc func(ctx context.Context, i int) (name, id string, err error)

func (s *service) writeFurniture(ctx context.Context, i int) (string, string, error) {
	item := &s.catalog.Furniture[i]
	write := s.furniture.Create
	if s.opts.Mode == model.SeedModeUpsert {
		write = s.furniture.UpsertByName
	}

	id, err := write(ctx, item)
	if err == nil {
		logger.Info(ctx, fmt.Sprintf("✅ Added furniture: %s (ID: %s)", item.Name, id))
	}
	return item.Name, id, err
}

func (s *service) writeCategory(ctx context.Context, i int) (string, string, error) {
	c := &s.catalog.Categories[i]
	write := s.categories.Create
	if s.opts.Mode == model.SeedModeUpsert {
		write = s.categories.UpsertByName
	}

	id, err := write(ctx, c)
	if err == nil {
		logger.Info(ctx, fmt.Sprintf("✅ Added category: %s", c.Name), logger.String("id", id))
	}
	return c.Name, id, err
}

func (s *service) writeAll(ctx context.Context, collection string, n int, write writeFunc) ([]model.Result, error) {
	if s.opts.Concurrency > 1 && n > 1 {
		return s.writeConcurrent(ctx, collection, n, write)
	}

	results := make([]model.Result, 0, n)
	var errs error
	for i := range n {
		if err := ctx.Err(); err != nil {
			return results, multierr.Append(errs, err)
		}

		res := s.writeOne(ctx, collection, i, write)
		results = append(results, res)
		if res.OK() {
			continue
		}

		errs = multierr.Append(errs, res.Err)
		if err := ctx.Err(); err != nil {
			return results, multierr.Append(errs, err)
		}
		if !s.opts.ContinueOnError {
			return results, errs
		}
	}

	return results, errs
}

// writeConcurrent keeps at most Concurrency writes in flight. Only the
// dispatcher stops on failure or cancellation, so every dispatched record is
// written and reported, and the report is always a prefix of the catalog.
func (s *service) writeConcurrent(ctx context.Context, collection string, n int, write writeFunc) ([]model.Result, error) {
	var (
		g       errgroup.Group
		stopped atomic.Bool
		all     = make([]model.Result, n)
		sent    int
	)
	g.SetLimit(s.opts.Concurrency)

	for i := range n {
		if ctx.Err() != nil || (!s.opts.ContinueOnError && stopped.Load()) {
			break
		}
		sent++
		g.Go(func() error {
			all[i] = s.writeOne(ctx, collection, i, write)
			if !all[i].OK() {
				stopped.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	results := all[:sent]
	var errs error
	for _, r := range results {
		if !r.OK() {
			errs = multierr.Append(errs, r.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}

	return results, errs
}

func (s *service) writeOne(ctx context.Context, collection string, i int, write writeFunc) model.Result {
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	started := time.Now()
	name, id, err := write(ctx, i)
	res := model.Result{Collection: collection, Index: i, Name: name, ID: id}
	if err != nil {
		res.ID = ""
		res.Err = errors.Join(model.ErrWrite, fmt.Errorf("%s %q: %w", collection, name, err))
		logger.Error(ctx, "❌ Failed to add record",
			logger.String("collection", collection),
			logger.String("name", name),
			logger.Duration("took", time.Since(started)),
			logger.ErrorF(err),
		)
	}

	return res
}

func (s *service) logSummary(ctx context.Context, r model.Report) {
	logger.Info(ctx, "📊 Summary:",
		logger.Int("furniture_items", r.FurnitureWritten()),
		logger.Int("categories", r.CategoriesWritten()),
		logger.Int("attempted", r.Attempted()),
		logger.Int("failed", r.Failed()),
	)
}
