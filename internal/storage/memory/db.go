// Package memory is the in-process storage backend: one arena per table,
// each with its own id sequence. It backs tests and the "memory" storage mode.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"shareit/internal/model"
)

// ItemRow is an item plus its soft-delete marker.
type ItemRow struct {
	model.Item
	DeletedAt *time.Time
}

// BookingRow is a booking as stored: references only, no joined data.
type BookingRow struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   model.BookingStatus
	Version  int64
}

// CommentRow is a comment as stored.
type CommentRow struct {
	ID       int64
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}

// DB groups the tables of every component.
type DB struct {
	Users    *Table[model.User]
	Items    *Table[ItemRow]
	Requests *Table[model.ItemRequest]
	Bookings *Table[BookingRow]
	Comments *Table[CommentRow]

	txMu sync.Mutex
}

// New returns an empty DB.
func New() *DB {
	return &DB{
		Users:    NewTable[model.User](),
		Items:    NewTable[ItemRow](),
		Requests: NewTable[model.ItemRequest](),
		Bookings: NewTable[BookingRow](),
		Comments: NewTable[CommentRow](),
	}
}

type txCtxKey struct{}

// RunInTx serializes fn against every other RunInTx on the same DB. Nested
// calls run inline. Writes made before an error are not rolled back.
func (db *DB) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*DB); ok {
		return fn(ctx)
	}

	db.txMu.Lock()
	defer db.txMu.Unlock()

	return fn(context.WithValue(ctx, txCtxKey{}, db))
}

// DeleteUser removes a user together with every row that references it,
// mirroring the ON DELETE rules of the postgres schema: the user's requests,
// items, bookings and comments go, bookings and comments on those items go,
// and items answering a removed request lose their request id.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	return db.RunInTx(ctx, func(ctx context.Context) error {
		requests := idSet(db.Requests.DeleteWhere(func(r model.ItemRequest) bool { return r.RequesterID == id }))
		items := idSet(db.Items.DeleteWhere(func(r ItemRow) bool { return r.OwnerID == id }))

		for _, it := range db.Items.Select(func(r ItemRow) bool { return r.RequestID != nil && requests[*r.RequestID] }) {
			if _, err := db.Items.Update(it.ID, func(r *ItemRow) error {
				r.RequestID = nil
				return nil
			}); err != nil && !errors.Is(err, ErrNoRow) {
				return err
			}
		}

		db.Bookings.DeleteWhere(func(r BookingRow) bool { return r.BookerID == id || items[r.ItemID] })
		db.Comments.DeleteWhere(func(r CommentRow) bool { return r.AuthorID == id || items[r.ItemID] })
		db.Users.Delete(id)
		return nil
	})
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
