package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/assembly-seeder/internal/config/env"
	"github.com/you-humble/assembly-seeder/internal/model"
)

var cfg *config

type config struct {
	Logger    Logger
	Store     Store
	Mongo     Mongo
	Dynamo    Dynamo
	Firestore Firestore
	Seeder    Seeder
}

// Load reads the configuration from the environment. With APP_ENV=local a
// .env file is loaded first. Every failure is classified as model.ErrConfig.
func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Join(model.ErrConfig, fmt.Errorf("%s: load .env: %w", op, err))
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s Logger: %w", op, err))
	}

	storeCfg, err := envconfig.NewStoreConfig()
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s Store: %w", op, err))
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s Mongo: %w", op, err))
	}

	dynamoCfg, err := envconfig.NewDynamoConfig()
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s Dynamo: %w", op, err))
	}

	firestoreCfg, err := envconfig.NewFirestoreConfig()
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s Firestore: %w", op, err))
	}

	seederCfg, err := envconfig.NewSeederConfig()
	if err != nil {
		return errors.Join(model.ErrConfig, fmt.Errorf("%s Seeder: %w", op, err))
	}

	cfg = &config{
		Logger:    loggerCfg,
		Store:     storeCfg,
		Mongo:     mongoCfg,
		Dynamo:    dynamoCfg,
		Firestore: firestoreCfg,
		Seeder:    seederCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
