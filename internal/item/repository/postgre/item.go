package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

const returningItem = "RETURNING id, name, description, available, owner_id, request_id"

func scanItem(row pgx.Row) (model.Item, error) {
	var it model.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	return it, err
}

// CreateItem inserts a new item row.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query, args, err := postgres.Builder().
		Insert("items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(opt.Name, opt.Description, opt.Available, opt.OwnerID, opt.RequestID).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem fetches a live item by id.
func (r *implRepository) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	query, args, err := postgres.Builder().
		Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns live items matching opt, by id.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	query, args, err := r.buildListQuery(opt).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem overwrites the mutable fields of a live item.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query, args, err := postgres.Builder().
		Update("items").
		Set("name", opt.Name).
		Set("description", opt.Description).
		Set("available", opt.Available).
		Where(sq.Eq{"id": opt.ID, "deleted_at": nil}).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem soft-deletes an item. Bookings and comments keep pointing at it.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	query, args, err := postgres.Builder().
		Update("items").
		Set("deleted_at", opt.At).
		Where(sq.Eq{"id": opt.ID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
