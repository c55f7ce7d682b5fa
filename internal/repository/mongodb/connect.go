// Package mongodb writes catalog records into MongoDB collections.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/assembly-seeder/internal/credential"
	"github.com/you-humble/assembly-seeder/internal/model"
)

// ClientOptions builds driver options from the service credential.
func ClientOptions(cred *credential.Credential, timeout time.Duration) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cred.ConnectionURI).
		SetAppName("assembly-seeder")

	if timeout > 0 {
		opts.SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout)
	}
	if cred.Username != "" {
		opts.SetAuth(options.Credential{
			Username:   cred.Username,
			Password:   cred.Password,
			AuthSource: cred.AuthSource,
		})
	}

	return opts
}

// Connect opens a client and pings the primary. The caller owns Disconnect.
func Connect(ctx context.Context, cred *credential.Credential, timeout time.Duration) (*mongo.Client, error) {
	const op = "mongodb.Connect"

	client, err := mongo.Connect(ClientOptions(cred, timeout))
	if err != nil {
		return nil, errors.Join(model.ErrConnection, fmt.Errorf("%s: %w", op, err))
	}

	pingCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Join(model.ErrConnection, fmt.Errorf("%s ping: %w", op, err))
	}

	return client, nil
}
