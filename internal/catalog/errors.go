package catalog

import "errors"

// Domain-level catalog error sentinels.
var (
	ErrFoodNotFound = errors.New("food not found")
	ErrDuplicateKey = errors.New("food key already exists")
	ErrEmptyKey     = errors.New("food key is empty")
)
