package model

import "errors"

var (
	ErrConfig         = errors.New("configuration error")
	ErrCredential     = errors.New("credential error")
	ErrConnection     = errors.New("connection error")
	ErrWrite          = errors.New("write error")
	ErrInvalidCatalog = errors.New("invalid catalog")
)
