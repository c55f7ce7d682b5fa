package envconfig

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/assembly-seeder/internal/model"
)

type seederEnv struct {
	CatalogPath     string        `env:"SEED_CATALOG_PATH"`
	Mode            string        `env:"SEED_MODE" envDefault:"append"`
	ContinueOnError bool          `env:"SEED_CONTINUE_ON_ERROR" envDefault:"false"`
	Concurrency     int           `env:"SEED_CONCURRENCY" envDefault:"1"`
	WriteTimeout    time.Duration `env:"SEED_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SEED_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type seeder struct {
	raw  seederEnv
	mode model.SeedMode
}

func NewSeederConfig() (*seeder, error) {
	var raw seederEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	mode, err := model.ParseSeedMode(raw.Mode)
	if err != nil {
		return nil, fmt.Errorf("SEED_MODE: %w", err)
	}

	var errs []error
	if raw.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("SEED_CONCURRENCY must be at least 1, got %d", raw.Concurrency))
	}
	if raw.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SEED_WRITE_TIMEOUT must be positive, got %s", raw.WriteTimeout))
	}
	if raw.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SEED_SHUTDOWN_TIMEOUT must be positive, got %s", raw.ShutdownTimeout))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &seeder{raw: raw, mode: mode}, nil
}

func (cfg *seeder) CatalogPath() string            { return cfg.raw.CatalogPath }
func (cfg *seeder) Mode() model.SeedMode           { return cfg.mode }
func (cfg *seeder) ContinueOnError() bool          { return cfg.raw.ContinueOnError }
func (cfg *seeder) Concurrency() int               { return cfg.raw.Concurrency }
func (cfg *seeder) WriteTimeout() time.Duration    { return cfg.raw.WriteTimeout }
func (cfg *seeder) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
