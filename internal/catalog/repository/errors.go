package repository

import "errors"

var (
	// ErrCacheMiss - The cache holds no value for the requested key
	ErrCacheMiss = errors.New("repository: cache miss")
)
