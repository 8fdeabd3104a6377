package postgre

import (
	"database/sql"

	"catalog-srv/internal/catalog/repository"
	"catalog-srv/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New - Factory
func New(l log.Logger, db *sql.DB) repository.Repository {
	return &implRepository{l: l, db: db}
}
