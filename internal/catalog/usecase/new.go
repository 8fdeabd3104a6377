package usecase

import (
	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"
	"catalog-srv/pkg/log"
)

// Config - Cấu hình UseCase
type Config struct {
	CacheEnabled bool // Serve list results and the brand facet through the cache layer
}

// DefaultConfig - Cấu hình mặc định
func DefaultConfig() Config {
	return Config{
		CacheEnabled: true,
	}
}

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	repo      repository.Repository
	cacheRepo repository.CacheRepository
	l         log.Logger
	cfg       Config
}

// New - Factory function
func New(
	repo repository.Repository,
	cacheRepo repository.CacheRepository,
	l log.Logger,
	cfg Config,
) catalog.UseCase {
	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		l:         l,
		cfg:       cfg,
	}
}
