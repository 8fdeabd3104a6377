package catalog

import "errors"

// Domain errors
var (
	// ErrInvalidEnumValue - A filter or sort value is outside its declared enumeration
	ErrInvalidEnumValue = errors.New("catalog: invalid enum value")

	// ErrInvalidRange - A numeric filter or pagination value is out of bounds
	ErrInvalidRange = errors.New("catalog: value out of range")

	// ErrQueryFailed - The storage collaborator failed to execute a query
	ErrQueryFailed = errors.New("catalog: query execution failed")
)
