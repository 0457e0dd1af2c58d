// Package storage holds what the use cases need to know about persistence
// regardless of the backend behind the repositories.
package storage

import "context"

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// TxManager runs fn inside one logical transaction. Repositories called with
// the ctx passed to fn take part in it.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
