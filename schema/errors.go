package schema

import "errors"

// Error values for registry operations.
var (
	ErrUnknownType   = errors.New("unknown schema type")
	ErrDuplicateType = errors.New("schema type already registered")
	ErrInvalidName   = errors.New("invalid schema name")
)
