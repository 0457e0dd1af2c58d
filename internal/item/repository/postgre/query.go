package postgre

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	repo "shareit/internal/item/repository"
	"shareit/pkg/postgres"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) sq.SelectBuilder {
	qb := postgres.Builder().
		Select(itemColumns...).
		From("items").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("id ASC")

	if opt.OwnerID != 0 {
		qb = qb.Where(sq.Eq{"owner_id": opt.OwnerID})
	}
	if opt.AvailableOnly {
		qb = qb.Where(sq.Eq{"available": true})
	}
	if opt.Text != "" {
		pattern := "%" + likeEscaper.Replace(opt.Text) + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if len(opt.RequestIDs) > 0 {
		qb = qb.Where(sq.Eq{"request_id": opt.RequestIDs})
	}
	if opt.Limit > 0 {
		qb = qb.Limit(uint64(opt.Limit)).Offset(uint64(opt.Offset))
	}
	return qb
}
