package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
	"shareit/pkg/postgres"
)

var userColumns = []string{"id", "name", "email"}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email)
	return u, err
}

// CreateUser inserts a new user row.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("name", "email").
		Values(opt.Name, opt.Email).
		Suffix("RETURNING id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns the first user matching every non-zero filter.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	where := sq.Eq{}
	if opt.ID != 0 {
		where["id"] = opt.ID
	}
	if opt.Email != "" {
		where["email"] = opt.Email
	}

	query, args, err := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns every user ordered by id.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := postgres.Builder().
		Select(userColumns...).
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

// UpdateUser overwrites name and email. Returns a zero User when the id is unknown.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("name", opt.Name).
		Set("email", opt.Email).
		Where(sq.Eq{"id": opt.ID}).
		Suffix("RETURNING id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return model.User{}, nil
	}
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

// DeleteUser removes a user by id.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
