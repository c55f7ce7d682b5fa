package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/assembly-seeder/internal/model"
)

type storeEnv struct {
	Driver          string        `env:"STORE_DRIVER" envDefault:"mongo"`
	CredentialsFile string        `env:"CREDENTIALS_FILE" envDefault:"serviceAccountKey.json"`
	ConnectTimeout  time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"10s"`
}

type store struct {
	raw    storeEnv
	driver model.StoreDriver
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	driver, err := model.ParseStoreDriver(raw.Driver)
	if err != nil {
		return nil, fmt.Errorf("STORE_DRIVER: %w", err)
	}
	if raw.ConnectTimeout <= 0 {
		return nil, fmt.Errorf("STORE_CONNECT_TIMEOUT must be positive, got %s", raw.ConnectTimeout)
	}

	return &store{raw: raw, driver: driver}, nil
}

func (cfg *store) Driver() model.StoreDriver     { return cfg.driver }
func (cfg *store) CredentialsFile() string       { return cfg.raw.CredentialsFile }
func (cfg *store) ConnectTimeout() time.Duration { return cfg.raw.ConnectTimeout }
