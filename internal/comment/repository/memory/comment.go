package memory

import (
	"context"
	"sort"

	repo "shareit/internal/comment/repository"
	"shareit/internal/model"
	"shareit/internal/storage/memory"
)

type implRepository struct {
	db *memory.DB
}

// New creates an in-memory Repository for comments.
func New(db *memory.DB) repo.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	row := r.db.Comments.Insert(func(id int64) memory.CommentRow {
		return memory.CommentRow{
			ID:       id,
			Text:     opt.Text,
			ItemID:   opt.ItemID,
			AuthorID: opt.AuthorID,
			Created:  opt.Created,
		}
	})
	return r.join(row), nil
}

func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	wanted := make(map[int64]struct{}, len(opt.ItemIDs))
	for _, id := range opt.ItemIDs {
		wanted[id] = struct{}{}
	}

	rows := r.db.Comments.Select(func(c memory.CommentRow) bool {
		_, ok := wanted[c.ItemID]
		return ok
	})
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Created.Equal(rows[j].Created) {
			return rows[i].Created.Before(rows[j].Created)
		}
		return rows[i].ID < rows[j].ID
	})

	out := make([]model.Comment, len(rows))
	for i, row := range rows {
		out[i] = r.join(row)
	}
	return out, nil
}

func (r *implRepository) join(row memory.CommentRow) model.Comment {
	author, _ := r.db.Users.Get(row.AuthorID)
	return model.Comment{
		ID:         row.ID,
		Text:       row.Text,
		ItemID:     row.ItemID,
		AuthorID:   row.AuthorID,
		AuthorName: author.Name,
		Created:    row.Created,
	}
}
