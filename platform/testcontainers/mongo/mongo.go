// Package mongo starts a throwaway MongoDB container for integration tests.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/assembly-seeder/platform/logger"
)

const (
	mongoPort           = "27017/tcp"
	mongoStartupTimeout = time.Minute

	mongoEnvUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	mongoEnvPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
)

type Container struct {
	container testcontainers.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	req := testcontainers.ContainerRequest{
		Name:  cfg.ContainerName,
		Image: cfg.ImageName,
		Env: map[string]string{
			mongoEnvUsernameKey:     cfg.Username,
			mongoEnvPasswordKey:     cfg.Password,
			"MONGO_INITDB_DATABASE": cfg.Database,
		},
		ExposedPorts:       []string{mongoPort},
		WaitingFor:         wait.ForListeningPort(mongoPort).WithStartupTimeout(mongoStartupTimeout),
		HostConfigModifier: autoRemove,
	}
	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{cfg.NetworkName: {"mongo"}}
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	c := &Container{container: ctr, cfg: cfg}
	if err := c.connect(ctx); err != nil {
		if terr := ctr.Terminate(ctx); terr != nil {
			cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(terr))
		}
		return nil, err
	}

	cfg.Logger.Info(ctx, "Mongo container started", logger.String("host", cfg.Host), logger.String("port", cfg.Port))
	return c, nil
}

func (c *Container) connect(ctx context.Context) error {
	host, err := c.container.Host(ctx)
	if err != nil {
		return errors.Wrap(err, "container host")
	}
	port, err := c.container.MappedPort(ctx, mongoPort)
	if err != nil {
		return errors.Wrap(err, "mapped port")
	}
	c.cfg.Host, c.cfg.Port = host, port.Port()

	client, err := mongo.Connect(options.Client().ApplyURI(c.URI()))
	if err != nil {
		return errors.Wrap(err, "connect to mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return errors.Wrap(err, "ping mongo")
	}

	c.client = client
	return nil
}

// URI is the host-reachable connection string without credentials.
func (c *Container) URI() string {
	return fmt.Sprintf("mongodb://%s:%s/?authSource=%s", c.cfg.Host, c.cfg.Port, c.cfg.AuthDB)
}

func (c *Container) Client() *mongo.Client { return c.client }
func (c *Container) Config() *Config       { return c.cfg }

// Database is the database the seeder should target.
func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", logger.ErrorF(err))
	}
	if err := c.container.Terminate(ctx); err != nil {
		return errors.Wrap(err, "terminate mongo container")
	}

	c.cfg.Logger.Info(ctx, "Mongo container terminated")
	return nil
}
