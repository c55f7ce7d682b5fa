package mongo

import (
	"context"
	"os"

	"github.com/docker/docker/api/types/container"

	"github.com/you-humble/assembly-seeder/platform/logger"
	"github.com/you-humble/assembly-seeder/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	Host string
	Port string
}

type Option func(*Config)

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ContainerName: "seeder-mongo",
		ImageName:     testcontainers.DefaultMongoImage,
		Database:      "assembly",
		Username:      "root",
		Password:      "root",
		AuthDB:        "admin",
		Logger:        &logger.NoopLogger{},
	}
	if image := os.Getenv(testcontainers.MongoImageNameKey); image != "" {
		cfg.ImageName = image
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func WithNetworkName(network string) Option {
	return func(c *Config) { c.NetworkName = network }
}

func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func autoRemove(hc *container.HostConfig) {
	hc.AutoRemove = true
}
