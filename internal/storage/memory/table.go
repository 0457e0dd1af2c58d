package memory

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrNoRow is returned by Update for an id the table does not hold.
	ErrNoRow = errors.New("memory: no row")
	// ErrConflict is returned by UpdateUnless when another row conflicts.
	ErrConflict = errors.New("memory: conflicting row")
)

// Table is an id-keyed arena with its own incrementing id sequence.
type Table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
}

// NewTable returns an empty table whose first id is 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int64]T)}
}

// Insert allocates the next id, builds the row with it and stores it.
func (t *Table[T]) Insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	row := build(t.nextID)
	t.rows[t.nextID] = row
	return row
}

// InsertUnless is Insert guarded by conflict: when any stored row conflicts,
// nothing is stored and ok is false. The id sequence is not consumed.
func (t *Table[T]) InsertUnless(conflict func(T) bool, build func(id int64) T) (row T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.rows {
		if conflict(r) {
			return row, false
		}
	}
	t.nextID++
	row = build(t.nextID)
	t.rows[t.nextID] = row
	return row, true
}

// Get returns the row stored under id.
func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// Update applies fn to the row under id while holding the write lock. An
// error from fn leaves the row untouched.
func (t *Table[T]) Update(id int64, fn func(row *T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, ErrNoRow
	}
	if err := fn(&row); err != nil {
		var zero T
		return zero, err
	}
	t.rows[id] = row
	return row, nil
}

// UpdateUnless is Update guarded by conflict: fn runs on the row under id and
// the result is stored only if no other row conflicts with it. Check and write
// happen under one lock.
func (t *Table[T]) UpdateUnless(id int64, conflict func(T) bool, fn func(row *T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	row, ok := t.rows[id]
	if !ok {
		return zero, ErrNoRow
	}
	if err := fn(&row); err != nil {
		return zero, err
	}
	for rid, r := range t.rows {
		if rid != id && conflict(r) {
			return zero, ErrConflict
		}
	}
	t.rows[id] = row
	return row, nil
}

// DeleteWhere removes every row matching match and returns their ids in order.
func (t *Table[T]) DeleteWhere(match func(T) bool) []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ids []int64
	for id, r := range t.rows {
		if match(r) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		delete(t.rows, id)
	}
	return ids
}

// Delete removes the row under id and reports whether it existed.
func (t *Table[T]) Delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Select returns every row matching keep, in id order.
func (t *Table[T]) Select(keep func(T) bool) []T {
	t.mu.RLock()
	ids := make([]int64, 0, len(t.rows))
	for id, r := range t.rows {
		if keep == nil || keep(r) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = t.rows[id]
	}
	t.mu.RUnlock()
	return out
}

// Window returns rows[offset:offset+limit], clamped to the slice bounds.
func Window[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
