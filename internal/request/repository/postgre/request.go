package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"shareit/internal/model"
	repo "shareit/internal/request/repository"
	"shareit/pkg/postgres"
)

var requestColumns = []string{"id", "description", "requester_id", "created"}

func scanRequest(row pgx.Row) (model.ItemRequest, error) {
	var ir model.ItemRequest
	err := row.Scan(&ir.ID, &ir.Description, &ir.RequesterID, &ir.Created)
	ir.Created = ir.Created.UTC()
	return ir, err
}

// CreateRequest inserts a new request row.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	query, args, err := postgres.Builder().
		Insert("requests").
		Columns("description", "requester_id", "created").
		Values(opt.Description, opt.RequesterID, opt.Created).
		Suffix("RETURNING id, description, requester_id, created").
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	ir, err := scanRequest(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToInsert
	}
	return ir, nil
}

// GetOneRequest fetches a request by id.
func (r *implRepository) GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	query, args, err := postgres.Builder().
		Select(requestColumns...).
		From("requests").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	ir, err := scanRequest(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.ItemRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToGet
	}
	return ir, nil
}

// ListRequests returns requests newest first.
func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	qb := postgres.Builder().
		Select(requestColumns...).
		From("requests").
		OrderBy("created DESC", "id DESC")
	if opt.RequesterID != 0 {
		qb = qb.Where(sq.Eq{"requester_id": opt.RequesterID})
	}
	if opt.ExcludeRequesterID != 0 {
		qb = qb.Where(sq.NotEq{"requester_id": opt.ExcludeRequesterID})
	}
	if opt.Limit > 0 {
		qb = qb.Limit(uint64(opt.Limit)).Offset(uint64(opt.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []model.ItemRequest{}
	for rows.Next() {
		ir, err := scanRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRequests"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, ir)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
