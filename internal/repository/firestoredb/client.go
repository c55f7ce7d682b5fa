// Package firestoredb writes catalog records into Cloud Firestore collections.
package firestoredb

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/you-humble/assembly-seeder/internal/credential"
	"github.com/you-humble/assembly-seeder/internal/model"
)

type ClientConfig struct {
	// ProjectID overrides the credential's project_id when set.
	ProjectID       string
	CredentialsFile string
	// EmulatorHost disables authentication; the client library dials it itself.
	EmulatorHost string
}

// NewClient opens a Firestore client authenticated with the service-account key file.
func NewClient(ctx context.Context, cred *credential.Credential, cfg ClientConfig) (*firestore.Client, error) {
	const op = "firestoredb.NewClient"

	projectID := cmp.Or(cfg.ProjectID, cred.ProjectID)
	if projectID == "" {
		return nil, errors.Join(model.ErrConfig, fmt.Errorf("%s: project id is required", op))
	}

	var opts []option.ClientOption
	if cfg.EmulatorHost == "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Join(model.ErrConnection, fmt.Errorf("%s: %w", op, err))
	}

	return client, nil
}

// Ping reads at most one document from every collection.
func Ping(ctx context.Context, client *firestore.Client, timeout time.Duration, collections ...string) error {
	const op = "firestoredb.Ping"

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for _, name := range collections {
		iter := client.Collection(name).Limit(1).Documents(ctx)
		_, err := iter.Next()
		iter.Stop()
		if err != nil && !errors.Is(err, iterator.Done) {
			return errors.Join(model.ErrConnection, fmt.Errorf("%s %s: %w", op, name, err))
		}
	}

	return nil
}
