package redis

import "errors"

var (
	// ErrHostRequired - Redis host was not configured
	ErrHostRequired = errors.New("redis: host is required")

	// ErrInvalidPort - Redis port is out of range
	ErrInvalidPort = errors.New("redis: invalid port")
)
