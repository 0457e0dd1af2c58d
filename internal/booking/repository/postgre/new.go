package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/booking/repository"
	"shareit/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed Repository for bookings.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("booking/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/postgre.%s", method)
}
