package httpserver

import (
	"fmt"

	bookingRepo "shareit/internal/booking/repository"
	bookingMemory "shareit/internal/booking/repository/memory"
	bookingPostgre "shareit/internal/booking/repository/postgre"
	commentRepo "shareit/internal/comment/repository"
	commentMemory "shareit/internal/comment/repository/memory"
	commentPostgre "shareit/internal/comment/repository/postgre"
	itemRepo "shareit/internal/item/repository"
	itemMemory "shareit/internal/item/repository/memory"
	itemPostgre "shareit/internal/item/repository/postgre"
	requestRepo "shareit/internal/request/repository"
	requestMemory "shareit/internal/request/repository/memory"
	requestPostgre "shareit/internal/request/repository/postgre"
	"shareit/internal/storage"
	userRepo "shareit/internal/user/repository"
	userMemory "shareit/internal/user/repository/memory"
	userPostgre "shareit/internal/user/repository/postgre"
	"shareit/pkg/postgres"
)

// repositories is one storage backend seen through every domain's Repository.
type repositories struct {
	txm      storage.TxManager
	users    userRepo.Repository
	items    itemRepo.Repository
	requests requestRepo.Repository
	bookings bookingRepo.Repository
	comments commentRepo.Repository
}

func (srv HTTPServer) newRepositories() (repositories, error) {
	switch srv.backend {
	case storage.BackendPostgres:
		return repositories{
			txm:      postgres.NewTxManager(srv.postgresDB),
			users:    userPostgre.New(srv.postgresDB, srv.l),
			items:    itemPostgre.New(srv.postgresDB, srv.l),
			requests: requestPostgre.New(srv.postgresDB, srv.l),
			bookings: bookingPostgre.New(srv.postgresDB, srv.l),
			comments: commentPostgre.New(srv.postgresDB, srv.l),
		}, nil
	case storage.BackendMemory:
		return repositories{
			txm:      srv.memoryDB,
			users:    userMemory.New(srv.memoryDB),
			items:    itemMemory.New(srv.memoryDB),
			requests: requestMemory.New(srv.memoryDB),
			bookings: bookingMemory.New(srv.memoryDB),
			comments: commentMemory.New(srv.memoryDB),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown storage backend %q", srv.backend)
	}
}
