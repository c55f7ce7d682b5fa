// Package credential reads the service-account key file used to reach the store.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/you-humble/assembly-seeder/internal/model"
)

const TypeServiceAccount = "service_account"

type Credential struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`

	// Firestore, as in a Firebase service-account key.
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`

	// MongoDB.
	ConnectionURI string `json:"connection_uri"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	AuthSource    string `json:"auth_source"`

	// DynamoDB.
	AccessKeyID     string `json:"aws_access_key_id"`
	SecretAccessKey string `json:"aws_secret_access_key"`
	SessionToken    string `json:"aws_session_token"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
}

// Load reads and decodes a credential file. The result is not validated.
func Load(path string) (*Credential, error) {
	const op = "credential.Load"

	if strings.TrimSpace(path) == "" {
		return nil, errors.Join(model.ErrCredential, fmt.Errorf("%s: path is empty", op))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(model.ErrCredential, fmt.Errorf("%s: %w", op, err))
	}

	var c Credential
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.Join(model.ErrCredential, fmt.Errorf("%s %s: %w", op, path, err))
	}

	return &c, nil
}

// ValidateFor checks that the fields the given store driver needs are present.
func (c *Credential) ValidateFor(driver model.StoreDriver) error {
	const op = "credential.ValidateFor"

	var errs []error
	if c.Type != TypeServiceAccount {
		errs = append(errs, fmt.Errorf("type must be %q, got %q", TypeServiceAccount, c.Type))
	}

	switch driver {
	case model.StoreDriverMongo:
		if c.ConnectionURI == "" {
			errs = append(errs, errors.New("connection_uri is required"))
		}
		if c.Password != "" && c.Username == "" {
			errs = append(errs, errors.New("password given without username"))
		}
	case model.StoreDriverDynamo:
		if c.AccessKeyID == "" || c.SecretAccessKey == "" {
			errs = append(errs, errors.New("aws_access_key_id and aws_secret_access_key are required"))
		}
	case model.StoreDriverFirestore:
		if c.ProjectID == "" {
			errs = append(errs, errors.New("project_id is required"))
		}
		if c.ClientEmail == "" || c.PrivateKey == "" {
			errs = append(errs, errors.New("client_email and private_key are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("no credential rules for driver %q", driver))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(model.ErrCredential, fmt.Errorf("%s: %w", op, errors.Join(errs...)))
}

func (c *Credential) String() string {
	return fmt.Sprintf("Credential{type=%s project=%s client=%s private_key=%s uri=%s user=%s password=%s key=%s secret=%s}",
		c.Type, c.ProjectID, c.ClientEmail, redact(c.PrivateKey), redactURI(c.ConnectionURI), c.Username,
		redact(c.Password), c.AccessKeyID, redact(c.SecretAccessKey))
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

// redactURI hides the userinfo password of a connection string.
func redactURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	userinfo, host, ok := strings.Cut(rest, "@")
	if !ok {
		return uri
	}
	user, _, hasPass := strings.Cut(userinfo, ":")
	if !hasPass {
		return uri
	}
	return scheme + "://" + user + ":***@" + host
}
