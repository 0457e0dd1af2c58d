package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	repo "shareit/internal/comment/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

func scanComment(row pgx.Row) (model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created)
	c.Created = c.Created.UTC()
	return c, err
}

// CreateComment inserts a comment and returns it with the author's name.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	query, args, err := postgres.Builder().
		Insert("comments").
		Columns("text", "item_id", "author_id", "created").
		Values(opt.Text, opt.ItemID, opt.AuthorID, opt.Created).
		Suffix("RETURNING id, text, item_id, author_id, (SELECT u.name FROM users u WHERE u.id = author_id), created").
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}

	c, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// ListComments returns the comments of the given items, oldest first.
func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	if len(opt.ItemIDs) == 0 {
		return []model.Comment{}, nil
	}

	query, args, err := postgres.Builder().
		Select("c.id", "c.text", "c.item_id", "c.author_id", "u.name", "c.created").
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(sq.Eq{"c.item_id": opt.ItemIDs}).
		OrderBy("c.created ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComments"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
