package postgre_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "shareit/internal/item/repository"
	"shareit/internal/item/repository/postgre"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
	requestPostgre "shareit/internal/request/repository/postgre"
	"shareit/internal/storage/pgtest"
	userRepo "shareit/internal/user/repository"
	userPostgre "shareit/internal/user/repository/postgre"
	"shareit/pkg/log"
)

func TestItemRepository(t *testing.T) {
	pool := pgtest.SetupTestDB(t)
	l := log.NewNop()
	r := postgre.New(pool, l)
	ctx := context.Background()

	owner, err := userPostgre.New(pool, l).CreateUser(ctx, userRepo.CreateUserOptions{Name: "Owner", Email: "owner@mail.com"})
	require.NoError(t, err)
	ir, err := requestPostgre.New(pool, l).CreateRequest(ctx, requestRepo.CreateRequestOptions{
		Description: "Need a drill",
		RequesterID: owner.ID,
		Created:     time.Now().UTC(),
	})
	require.NoError(t, err)

	create := func(name, description string, available bool, requestID *int64) model.Item {
		it, err := r.CreateItem(ctx, repo.CreateItemOptions{
			Name:        name,
			Description: description,
			Available:   available,
			OwnerID:     owner.ID,
			RequestID:   requestID,
		})
		require.NoError(t, err)
		return it
	}

	drill := create("Drill", "Cordless", true, &ir.ID)
	saw := create("Saw", "Goes with the DRILL", true, nil)
	create("Old drill", "Broken", false, nil)
	percent := create("100% cotton tent", "Sleeps two", true, nil)

	got, err := r.GetOneItem(ctx, drill.ID)
	require.NoError(t, err)
	assert.Equal(t, drill, got)
	require.NotNil(t, got.RequestID)
	assert.Equal(t, ir.ID, *got.RequestID)

	t.Run("search", func(t *testing.T) {
		found, err := r.ListItems(ctx, repo.ListItemsOptions{Text: "dRiLl", AvailableOnly: true})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, drill.ID, found[0].ID)
		assert.Equal(t, saw.ID, found[1].ID)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		found, err := r.ListItems(ctx, repo.ListItemsOptions{Text: "0%", AvailableOnly: true})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, percent.ID, found[0].ID)

		none, err := r.ListItems(ctx, repo.ListItemsOptions{Text: "_", AvailableOnly: true})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("by owner paged", func(t *testing.T) {
		page, err := r.ListItems(ctx, repo.ListItemsOptions{OwnerID: owner.ID, Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Less(t, page[0].ID, page[1].ID)
	})

	t.Run("by request", func(t *testing.T) {
		found, err := r.ListItems(ctx, repo.ListItemsOptions{RequestIDs: []int64{ir.ID}})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, drill.ID, found[0].ID)
	})

	t.Run("update and soft delete", func(t *testing.T) {
		updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: saw.ID, Name: "Jigsaw", Description: "Electric", Available: false})
		require.NoError(t, err)
		assert.Equal(t, "Jigsaw", updated.Name)
		assert.False(t, updated.Available)

		require.NoError(t, r.DeleteItem(ctx, repo.DeleteItemOptions{ID: saw.ID, At: time.Now().UTC()}))

		gone, err := r.GetOneItem(ctx, saw.ID)
		require.NoError(t, err)
		assert.Zero(t, gone.ID)

		again, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: saw.ID, Name: "x", Description: "y"})
		require.NoError(t, err)
		assert.Zero(t, again.ID)

		all, err := r.ListItems(ctx, repo.ListItemsOptions{OwnerID: owner.ID})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
