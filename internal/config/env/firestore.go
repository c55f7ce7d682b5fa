package envconfig

import "github.com/caarlos0/env/v11"

type firestoreEnv struct {
	// Empty falls back to the credential's project_id.
	ProjectID            string `env:"FIRESTORE_PROJECT_ID"`
	EmulatorHost         string `env:"FIRESTORE_EMULATOR_HOST"`
	FurnitureCollection  string `env:"FIRESTORE_FURNITURE_COLLECTION" envDefault:"furniture"`
	CategoriesCollection string `env:"FIRESTORE_CATEGORIES_COLLECTION" envDefault:"categories"`
}

type firestore struct {
	raw firestoreEnv
}

func NewFirestoreConfig() (*firestore, error) {
	var raw firestoreEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &firestore{raw: raw}, nil
}

func (cfg *firestore) ProjectID() string            { return cfg.raw.ProjectID }
func (cfg *firestore) EmulatorHost() string         { return cfg.raw.EmulatorHost }
func (cfg *firestore) FurnitureCollection() string  { return cfg.raw.FurnitureCollection }
func (cfg *firestore) CategoriesCollection() string { return cfg.raw.CategoriesCollection }
