package model

import "fmt"

type StoreDriver string

const (
	StoreDriverMongo     StoreDriver = "mongo"
	StoreDriverDynamo    StoreDriver = "dynamodb"
	StoreDriverFirestore StoreDriver = "firestore"
	// StoreDriverMemory keeps documents in process; used for dry runs.
	StoreDriverMemory StoreDriver = "memory"
)

func ParseStoreDriver(s string) (StoreDriver, error) {
	switch StoreDriver(s) {
	case StoreDriverMongo, StoreDriverDynamo, StoreDriverFirestore, StoreDriverMemory:
		return StoreDriver(s), nil
	default:
		return "", fmt.Errorf("unknown store driver %q", s)
	}
}
