package app

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/assembly-seeder/internal/catalog"
	"github.com/you-humble/assembly-seeder/internal/config"
	"github.com/you-humble/assembly-seeder/internal/credential"
	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/dynamo"
	"github.com/you-humble/assembly-seeder/internal/repository/firestoredb"
	"github.com/you-humble/assembly-seeder/internal/repository/memory"
	"github.com/you-humble/assembly-seeder/internal/repository/mongodb"
	"github.com/you-humble/assembly-seeder/internal/service/seeder"
	"github.com/you-humble/assembly-seeder/platform/closer"
	"github.com/you-humble/assembly-seeder/platform/logger"
)

type Seeder interface {
	Run(ctx context.Context) (model.Report, error)
}

type di struct {
	catalog    *model.Catalog
	credential *credential.Credential

	mongo     *mongo.Client
	dynamo    *dynamodb.Client
	firestore *firestore.Client
	memory    *memory.Store

	furniture  seeder.FurnitureRepository
	categories seeder.CategoryRepository

	seeder Seeder
}

func NewDI() *di { return &di{} }

// Catalog loads and validates the catalog once.
func (d *di) Catalog() (*model.Catalog, error) {
	if d.catalog == nil {
		c, err := catalog.Load(config.C().Seeder.CatalogPath())
		if err != nil {
			return nil, err
		}
		if err := catalog.Validate(c); err != nil {
			return nil, err
		}

		d.catalog = c
	}

	return d.catalog, nil
}

func (d *di) Credential() (*credential.Credential, error) {
	if d.credential == nil {
		cfg := config.C().Store

		cred, err := credential.Load(cfg.CredentialsFile())
		if err != nil {
			return nil, err
		}
		if err := cred.ValidateFor(cfg.Driver()); err != nil {
			return nil, err
		}

		d.credential = cred
	}

	return d.credential, nil
}

func (d *di) MongoClient(ctx context.Context) (*mongo.Client, error) {
	if d.mongo == nil {
		cred, err := d.Credential()
		if err != nil {
			return nil, err
		}

		client, err := mongodb.Connect(ctx, cred, config.C().Store.ConnectTimeout())
		if err != nil {
			return nil, err
		}
		closer.AddNamed("Mongo Client", func(ctx context.Context) error {
			return client.Disconnect(ctx)
		})

		d.mongo = client
	}

	return d.mongo, nil
}

func (d *di) MongoDatabase(ctx context.Context) (*mongo.Database, error) {
	client, err := d.MongoClient(ctx)
	if err != nil {
		return nil, err
	}

	name := config.C().Mongo.DatabaseName()
	if name == "" {
		name = d.credential.ProjectID
	}
	if name == "" {
		return nil, errors.Join(model.ErrConfig, errors.New("MONGO_DATABASE is empty and the credential has no project_id"))
	}

	return client.Database(name), nil
}

func (d *di) DynamoClient(ctx context.Context) (*dynamodb.Client, error) {
	if d.dynamo == nil {
		cred, err := d.Credential()
		if err != nil {
			return nil, err
		}

		cfg := config.C()
		client, err := dynamo.NewClient(ctx, cred, dynamo.ClientConfig{
			Region:   cfg.Dynamo.Region(),
			Endpoint: cfg.Dynamo.Endpoint(),
		})
		if err != nil {
			return nil, err
		}

		err = dynamo.Ping(ctx, client, cfg.Store.ConnectTimeout(),
			cfg.Dynamo.FurnitureTable(), cfg.Dynamo.CategoriesTable())
		if err != nil {
			return nil, err
		}

		d.dynamo = client
	}

	return d.dynamo, nil
}

func (d *di) FirestoreClient(ctx context.Context) (*firestore.Client, error) {
	if d.firestore == nil {
		cred, err := d.Credential()
		if err != nil {
			return nil, err
		}

		cfg := config.C()
		client, err := firestoredb.NewClient(ctx, cred, firestoredb.ClientConfig{
			ProjectID:       cfg.Firestore.ProjectID(),
			CredentialsFile: cfg.Store.CredentialsFile(),
			EmulatorHost:    cfg.Firestore.EmulatorHost(),
		})
		if err != nil {
			return nil, err
		}
		closer.AddNamed("Firestore Client", func(context.Context) error {
			return client.Close()
		})

		err = firestoredb.Ping(ctx, client, cfg.Store.ConnectTimeout(),
			cfg.Firestore.FurnitureCollection(), cfg.Firestore.CategoriesCollection())
		if err != nil {
			return nil, err
		}

		d.firestore = client
	}

	return d.firestore, nil
}

func (d *di) MemoryStore() *memory.Store {
	if d.memory == nil {
		d.memory = memory.NewStore()
		closer.AddNamed("Memory Store", func(ctx context.Context) error {
			logger.Info(ctx, "🧪 dry run, nothing was persisted",
				logger.Int("furniture", d.memory.Count(model.CollectionFurniture)),
				logger.Int("categories", d.memory.Count(model.CollectionCategories)),
			)
			return nil
		})
	}

	return d.memory
}

// Repositories builds both collection writers for the configured driver.
func (d *di) Repositories(ctx context.Context) (seeder.FurnitureRepository, seeder.CategoryRepository, error) {
	const op = "app.di.Repositories"

	if d.furniture != nil {
		return d.furniture, d.categories, nil
	}

	cfg := config.C()
	switch driver := cfg.Store.Driver(); driver {
	case model.StoreDriverMongo:
		db, err := d.MongoDatabase(ctx)
		if err != nil {
			return nil, nil, err
		}

		furniture := db.Collection(cfg.Mongo.FurnitureCollection())
		categories := db.Collection(cfg.Mongo.CategoriesCollection())
		if err := mongodb.EnsureFurnitureIndexes(ctx, furniture); err != nil {
			return nil, nil, errors.Join(model.ErrConnection, fmt.Errorf("%s: %w", op, err))
		}
		if err := mongodb.EnsureCategoryIndexes(ctx, categories); err != nil {
			return nil, nil, errors.Join(model.ErrConnection, fmt.Errorf("%s: %w", op, err))
		}

		d.furniture = mongodb.NewFurnitureRepository(furniture)
		d.categories = mongodb.NewCategoryRepository(categories)

	case model.StoreDriverDynamo:
		client, err := d.DynamoClient(ctx)
		if err != nil {
			return nil, nil, err
		}

		d.furniture = dynamo.NewFurnitureRepository(client, cfg.Dynamo.FurnitureTable())
		d.categories = dynamo.NewCategoryRepository(client, cfg.Dynamo.CategoriesTable())

	case model.StoreDriverFirestore:
		client, err := d.FirestoreClient(ctx)
		if err != nil {
			return nil, nil, err
		}

		d.furniture = firestoredb.NewFurnitureRepository(client, cfg.Firestore.FurnitureCollection())
		d.categories = firestoredb.NewCategoryRepository(client, cfg.Firestore.CategoriesCollection())

	case model.StoreDriverMemory:
		store := d.MemoryStore()
		d.furniture = memory.NewFurnitureRepository(store, model.CollectionFurniture)
		d.categories = memory.NewCategoryRepository(store, model.CollectionCategories)

	default:
		return nil, nil, errors.Join(model.ErrConfig, fmt.Errorf("%s: unsupported driver %q", op, driver))
	}

	return d.furniture, d.categories, nil
}

func (d *di) SeederService(ctx context.Context) (Seeder, error) {
	if d.seeder == nil {
		c, err := d.Catalog()
		if err != nil {
			return nil, err
		}

		furniture, categories, err := d.Repositories(ctx)
		if err != nil {
			return nil, err
		}

		cfg := config.C().Seeder
		d.seeder = seeder.NewSeederService(furniture, categories, c, seeder.Options{
			Mode:            cfg.Mode(),
			ContinueOnError: cfg.ContinueOnError(),
			Concurrency:     cfg.Concurrency(),
			WriteTimeout:    cfg.WriteTimeout(),
		})
	}

	return d.seeder, nil
}
