package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/comment"
	repo "shareit/internal/comment/repository"
	"shareit/internal/model"
	"shareit/internal/user"
)

// Create stores a comment from someone whose booking of the item is over.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input comment.CreateCommentInput) (model.Comment, error) {
	var c model.Comment
	err := uc.txm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.users.Detail(ctx, sc.UserID); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return comment.ErrUserNotFound
			}
			uc.l.Errorf(ctx, "uc.Create Detail: %v", err)
			return err
		}

		it, err := uc.items.GetOneItem(ctx, input.ItemID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
			return err
		}
		if it.ID == 0 {
			return comment.ErrItemNotFound
		}

		now := uc.now()
		ok, err := uc.bookings.CompletedBookingExists(ctx, sc.UserID, it.ID, now)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CompletedBookingExists: %v", err)
			return err
		}
		if !ok {
			return comment.ErrNoCompletedBooking
		}

		c, err = uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
			Text:     strings.TrimSpace(input.Text),
			ItemID:   it.ID,
			AuthorID: sc.UserID,
			Created:  now,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateComment: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (uc *implUseCase) ListByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	out, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: []int64{itemID}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByItem ListComments: %v", err)
		return nil, err
	}
	return out, nil
}

func (uc *implUseCase) ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]model.Comment, error) {
	grouped := make(map[int64][]model.Comment, len(itemIDs))
	if len(itemIDs) == 0 {
		return grouped, nil
	}

	rows, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: itemIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByItems ListComments: %v", err)
		return nil, err
	}
	for _, c := range rows {
		grouped[c.ItemID] = append(grouped[c.ItemID], c)
	}
	return grouped, nil
}
