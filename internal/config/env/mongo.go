package envconfig

import "github.com/caarlos0/env/v11"

type mongoEnv struct {
	// Empty falls back to the credential's project_id.
	DBName               string `env:"MONGO_DATABASE"`
	FurnitureCollection  string `env:"MONGO_FURNITURE_COLLECTION" envDefault:"furniture"`
	CategoriesCollection string `env:"MONGO_CATEGORIES_COLLECTION" envDefault:"categories"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string         { return cfg.raw.DBName }
func (cfg *mongo) FurnitureCollection() string  { return cfg.raw.FurnitureCollection }
func (cfg *mongo) CategoriesCollection() string { return cfg.raw.CategoriesCollection }
