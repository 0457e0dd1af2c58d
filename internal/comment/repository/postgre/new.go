package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/comment/repository"
	"shareit/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed Repository for comments.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("comment/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("comment/repository/postgre.%s", method)
}
