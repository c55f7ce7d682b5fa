package envconfig

import "github.com/caarlos0/env/v11"

type dynamoEnv struct {
	Region          string `env:"DYNAMO_REGION"`
	Endpoint        string `env:"DYNAMO_ENDPOINT"`
	FurnitureTable  string `env:"DYNAMO_FURNITURE_TABLE" envDefault:"furniture"`
	CategoriesTable string `env:"DYNAMO_CATEGORIES_TABLE" envDefault:"categories"`
}

type dynamo struct {
	raw dynamoEnv
}

func NewDynamoConfig() (*dynamo, error) {
	var raw dynamoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &dynamo{raw: raw}, nil
}

func (cfg *dynamo) Region() string          { return cfg.raw.Region }
func (cfg *dynamo) Endpoint() string        { return cfg.raw.Endpoint }
func (cfg *dynamo) FurnitureTable() string  { return cfg.raw.FurnitureTable }
func (cfg *dynamo) CategoriesTable() string { return cfg.raw.CategoriesTable }
