package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/internal/storage/memory"
)

type implRepository struct {
	db *memory.DB
}

// New creates an in-memory Repository for bookings.
func New(db *memory.DB) repo.Repository {
	return &implRepository{db: db}
}

// join resolves the item and booker of a stored row. Soft-deleted items still join.
func (r *implRepository) join(row memory.BookingRow) model.Booking {
	b := model.Booking{
		ID:      row.ID,
		Start:   row.Start,
		End:     row.End,
		Status:  row.Status,
		Version: row.Version,
		Item:    model.BookingItem{ID: row.ItemID},
		Booker:  model.BookingUser{ID: row.BookerID},
	}
	if it, ok := r.db.Items.Get(row.ItemID); ok {
		b.Item.Name, b.Item.OwnerID = it.Name, it.OwnerID
	}
	if u, ok := r.db.Users.Get(row.BookerID); ok {
		b.Booker.Name = u.Name
	}
	return b
}

func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	row := r.db.Bookings.Insert(func(id int64) memory.BookingRow {
		return memory.BookingRow{
			ID:       id,
			Start:    opt.Start,
			End:      opt.End,
			ItemID:   opt.ItemID,
			BookerID: opt.BookerID,
			Status:   opt.Status,
			Version:  1,
		}
	})
	return r.join(row), nil
}

func (r *implRepository) GetOneBooking(ctx context.Context, id int64) (model.Booking, error) {
	row, ok := r.db.Bookings.Get(id)
	if !ok {
		return model.Booking{}, nil
	}
	return r.join(row), nil
}

func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Booking, error) {
	row, err := r.db.Bookings.Update(opt.ID, func(row *memory.BookingRow) error {
		if row.Version != opt.ExpectedVersion {
			return repo.ErrVersionMismatch
		}
		row.Status = opt.Status
		row.Version++
		return nil
	})
	if errors.Is(err, memory.ErrNoRow) {
		return model.Booking{}, repo.ErrVersionMismatch
	}
	if err != nil {
		return model.Booking{}, err
	}
	return r.join(row), nil
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	var owned map[int64]bool
	if opt.OwnerID != 0 {
		owned = map[int64]bool{}
		for _, it := range r.db.Items.Select(func(it memory.ItemRow) bool { return it.OwnerID == opt.OwnerID }) {
			owned[it.ID] = true
		}
	}

	rows := r.db.Bookings.Select(func(row memory.BookingRow) bool {
		if opt.BookerID != 0 && row.BookerID != opt.BookerID {
			return false
		}
		if owned != nil && !owned[row.ItemID] {
			return false
		}
		if opt.Status != "" && row.Status != opt.Status {
			return false
		}
		return inWindow(row, opt.Window)
	})
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Start.Equal(rows[j].Start) {
			return rows[i].Start.After(rows[j].Start)
		}
		return rows[i].ID > rows[j].ID
	})

	rows = memory.Window(rows, opt.Offset, opt.Limit)
	out := make([]model.Booking, len(rows))
	for i, row := range rows {
		out[i] = r.join(row)
	}
	return out, nil
}

func inWindow(row memory.BookingRow, w repo.Window) bool {
	if w.StartAtOrBefore != nil && row.Start.After(*w.StartAtOrBefore) {
		return false
	}
	if w.EndAtOrAfter != nil && row.End.Before(*w.EndAtOrAfter) {
		return false
	}
	if w.StartAfter != nil && !row.Start.After(*w.StartAfter) {
		return false
	}
	if w.EndBefore != nil && !row.End.Before(*w.EndBefore) {
		return false
	}
	return true
}

func (r *implRepository) GetLastBooking(ctx context.Context, itemID int64, now time.Time) (model.Booking, error) {
	rows := r.db.Bookings.Select(func(row memory.BookingRow) bool {
		return row.ItemID == itemID && row.End.Before(now) && row.Status != model.BookingStatusRejected
	})
	if len(rows) == 0 {
		return model.Booking{}, nil
	}

	best := rows[0]
	for _, row := range rows[1:] {
		if row.End.After(best.End) || (row.End.Equal(best.End) && row.ID > best.ID) {
			best = row
		}
	}
	return r.join(best), nil
}

func (r *implRepository) GetNextBooking(ctx context.Context, itemID int64, now time.Time) (model.Booking, error) {
	rows := r.db.Bookings.Select(func(row memory.BookingRow) bool {
		return row.ItemID == itemID && row.Start.After(now) && row.Status == model.BookingStatusApproved
	})
	if len(rows) == 0 {
		return model.Booking{}, nil
	}

	// rows are in id order, so the first earliest start wins ties.
	best := rows[0]
	for _, row := range rows[1:] {
		if row.Start.Before(best.Start) {
			best = row
		}
	}
	return r.join(best), nil
}

func (r *implRepository) ExistsCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	rows := r.db.Bookings.Select(func(row memory.BookingRow) bool {
		return row.BookerID == bookerID && row.ItemID == itemID && row.End.Before(now)
	})
	return len(rows) > 0, nil
}
