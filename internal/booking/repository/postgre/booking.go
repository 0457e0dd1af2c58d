package postgre

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

// CreateBooking inserts a booking and reads it back joined.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	query, args, err := postgres.Builder().
		Insert("bookings").
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(opt.Start, opt.End, opt.ItemID, opt.BookerID, opt.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repo.ErrFailedToInsert
	}
	return r.GetOneBooking(ctx, id)
}

// GetOneBooking fetches a booking by id.
func (r *implRepository) GetOneBooking(ctx context.Context, id int64) (model.Booking, error) {
	query, args, err := selectBookings().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	b, err := scanBooking(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// UpdateBookingStatus is a compare-and-set on the version column.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Booking, error) {
	query, args, err := postgres.Builder().
		Update("bookings").
		Set("status", opt.Status).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": opt.ID, "version": opt.ExpectedVersion}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return model.Booking{}, repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return model.Booking{}, repo.ErrVersionMismatch
	}
	return r.GetOneBooking(ctx, opt.ID)
}

// ListBookings returns bookings matching opt, latest start first.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	query, args, err := applyListOptions(selectBookings(), opt).ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryBookings(ctx, "ListBookings", query, args)
}

// GetLastBooking is the non-rejected booking of the item with the latest end before now.
func (r *implRepository) GetLastBooking(ctx context.Context, itemID int64, now time.Time) (model.Booking, error) {
	query, args, err := selectBookings().
		Where(sq.Eq{"b.item_id": itemID}).
		Where(sq.Lt{"b.end_date": now}).
		Where(sq.NotEq{"b.status": model.BookingStatusRejected}).
		OrderBy("b.end_date DESC", "b.id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	return r.queryOne(ctx, "GetLastBooking", query, args)
}

// GetNextBooking is the approved booking of the item with the earliest start after now.
func (r *implRepository) GetNextBooking(ctx context.Context, itemID int64, now time.Time) (model.Booking, error) {
	query, args, err := selectBookings().
		Where(sq.Eq{"b.item_id": itemID, "b.status": model.BookingStatusApproved}).
		Where(sq.Gt{"b.start_date": now}).
		OrderBy("b.start_date ASC", "b.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	return r.queryOne(ctx, "GetNextBooking", query, args)
}

// ExistsCompletedBooking reports whether the booker has a booking of the item
// that ended before now.
func (r *implRepository) ExistsCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	sub, args, err := postgres.Builder().
		Select("1").
		From("bookings").
		Where(sq.Eq{"booker_id": bookerID, "item_id": itemID}).
		Where(sq.Lt{"end_date": now}).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).
		Scan(&exists)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsCompletedBooking"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}

func (r *implRepository) queryOne(ctx context.Context, method, query string, args []any) (model.Booking, error) {
	b, err := scanBooking(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

func (r *implRepository) queryBookings(ctx context.Context, method, query string, args []any) ([]model.Booking, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
