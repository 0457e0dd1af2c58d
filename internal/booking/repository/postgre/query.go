package postgre

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

// selectBookings joins every booking with its item and booker.
func selectBookings() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"b.id", "b.start_date", "b.end_date", "b.status", "b.version",
			"i.id", "i.name", "i.owner_id",
			"u.id", "u.name",
		).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

func scanBooking(row pgx.Row) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status, &b.Version,
		&b.Item.ID, &b.Item.Name, &b.Item.OwnerID,
		&b.Booker.ID, &b.Booker.Name,
	)
	b.Start, b.End = b.Start.UTC(), b.End.UTC()
	return b, err
}

func applyListOptions(qb sq.SelectBuilder, opt repo.ListBookingsOptions) sq.SelectBuilder {
	if opt.BookerID != 0 {
		qb = qb.Where(sq.Eq{"b.booker_id": opt.BookerID})
	}
	if opt.OwnerID != 0 {
		qb = qb.Where(sq.Eq{"i.owner_id": opt.OwnerID})
	}

	w := opt.Window
	if w.StartAtOrBefore != nil {
		qb = qb.Where(sq.LtOrEq{"b.start_date": *w.StartAtOrBefore})
	}
	if w.EndAtOrAfter != nil {
		qb = qb.Where(sq.GtOrEq{"b.end_date": *w.EndAtOrAfter})
	}
	if w.StartAfter != nil {
		qb = qb.Where(sq.Gt{"b.start_date": *w.StartAfter})
	}
	if w.EndBefore != nil {
		qb = qb.Where(sq.Lt{"b.end_date": *w.EndBefore})
	}

	if opt.Status != "" {
		qb = qb.Where(sq.Eq{"b.status": opt.Status})
	}

	qb = qb.OrderBy("b.start_date DESC", "b.id DESC")
	if opt.Limit > 0 {
		qb = qb.Limit(uint64(opt.Limit)).Offset(uint64(opt.Offset))
	}
	return qb
}
