package model

import "fmt"

type SeedMode string

const (
	// SeedModeAppend inserts every record as a new document; re-running duplicates.
	SeedModeAppend SeedMode = "append"
	// SeedModeUpsert replaces documents matched by name.
	SeedModeUpsert SeedMode = "upsert"
)

func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case SeedModeAppend, SeedModeUpsert:
		return SeedMode(s), nil
	default:
		return "", fmt.Errorf("unknown seed mode %q", s)
	}
}

const (
	CollectionFurniture  = "furniture"
	CollectionCategories = "categories"
)
