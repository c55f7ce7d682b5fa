package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/assembly-seeder/internal/config"
	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/platform/closer"
	"github.com/you-humble/assembly-seeder/platform/logger"
)

type app struct {
	di *di
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) (model.Report, error) { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initCatalog,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	const op = "app.initLogger"

	err := logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initCatalog rejects a broken catalog before any connection is opened.
func (a *app) initCatalog(ctx context.Context) error {
	c, err := a.di.Catalog()
	if err != nil {
		logger.Error(ctx, "invalid catalog", logger.ErrorF(err))
		return err
	}

	logger.Debug(ctx, "catalog loaded",
		logger.String("version", c.Version),
		logger.String("path", config.C().Seeder.CatalogPath()),
	)
	return nil
}

func (a *app) run(ctx context.Context) (model.Report, error) {
	defer gracefulShutdown()

	logger.Info(ctx, "🚀 seeder starting",
		logger.String("driver", string(config.C().Store.Driver())),
	)

	svc, err := a.di.SeederService(ctx)
	if err != nil {
		logger.Error(ctx, "❌ failed to prepare store", logger.ErrorF(err))
		return model.Report{}, err
	}

	report, err := svc.Run(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error seeding database", logger.ErrorF(err))
		return report, err
	}

	return report, nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Seeder.ShutdownTimeout(),
	)
	defer cancel()

	if err := closer.CloseAll(ctx); err != nil {
		logger.Error(ctx, "❌ Error releasing store clients", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "✅ Store clients released")
}
