package config

import (
	"time"

	"github.com/you-humble/assembly-seeder/internal/model"
)

type Logger interface {
	Level() string
	AsJSON() bool
}

type Store interface {
	Driver() model.StoreDriver
	CredentialsFile() string
	ConnectTimeout() time.Duration
}

type Mongo interface {
	DatabaseName() string
	FurnitureCollection() string
	CategoriesCollection() string
}

type Dynamo interface {
	Region() string
	Endpoint() string
	FurnitureTable() string
	CategoriesTable() string
}

type Firestore interface {
	ProjectID() string
	EmulatorHost() string
	FurnitureCollection() string
	CategoriesCollection() string
}

type Seeder interface {
	CatalogPath() string
	Mode() model.SeedMode
	ContinueOnError() bool
	Concurrency() int
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration
}
