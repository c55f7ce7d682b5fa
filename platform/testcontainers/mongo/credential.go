package mongo

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteCredential writes a service-account key file for the container into dir
// and returns its path.
func (c *Container) WriteCredential(dir string) (string, error) {
	key := map[string]string{
		"type":           "service_account",
		"project_id":     c.cfg.Database,
		"client_email":   "seeder@" + c.cfg.Database + ".test",
		"connection_uri": c.URI(),
		"username":       c.cfg.Username,
		"password":       c.cfg.Password,
		"auth_source":    c.cfg.AuthDB,
	}

	raw, err := json.MarshalIndent(key, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal credential")
	}

	path := filepath.Join(dir, "serviceAccountKey.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", errors.Wrap(err, "write credential")
	}

	return path, nil
}
