package httpserver

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/booking"
	bookingRepo "shareit/internal/booking/repository"
	bookingUC "shareit/internal/booking/usecase"
	commentRepo "shareit/internal/comment/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
	"shareit/internal/storage"
	"shareit/internal/storage/memory"
	"shareit/internal/storage/pgtest"
	"shareit/internal/user"
	userRepo "shareit/internal/user/repository"
	userUC "shareit/internal/user/usecase"
	"shareit/pkg/log"
)

func backends() map[string]func(t *testing.T) HTTPServer {
	return map[string]func(t *testing.T) HTTPServer{
		storage.BackendMemory: func(t *testing.T) HTTPServer {
			return HTTPServer{l: log.NewNop(), mode: gin.TestMode, backend: storage.BackendMemory, memoryDB: memory.New()}
		},
		storage.BackendPostgres: func(t *testing.T) HTTPServer {
			return HTTPServer{l: log.NewNop(), mode: gin.TestMode, backend: storage.BackendPostgres, postgresDB: pgtest.SetupTestDB(t)}
		},
	}
}

func TestDeleteUserCascades(t *testing.T) {
	for name, newServer := range backends() {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t)
			repos, err := srv.newRepositories()
			require.NoError(t, err)
			ctx := context.Background()
			l := log.NewNop()

			owner, err := repos.users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Owner", Email: "owner@mail.com"})
			require.NoError(t, err)
			booker, err := repos.users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Booker", Email: "booker@mail.com"})
			require.NoError(t, err)

			ownerReq, err := repos.requests.CreateRequest(ctx, requestRepo.CreateRequestOptions{
				Description: "Need a ladder",
				RequesterID: owner.ID,
				Created:     time.Now().UTC(),
			})
			require.NoError(t, err)
			drill, err := repos.items.CreateItem(ctx, itemRepo.CreateItemOptions{Name: "Drill", Description: "Cordless", Available: true, OwnerID: owner.ID})
			require.NoError(t, err)
			ladder, err := repos.items.CreateItem(ctx, itemRepo.CreateItemOptions{
				Name:        "Ladder",
				Description: "Three meters",
				Available:   true,
				OwnerID:     booker.ID,
				RequestID:   &ownerReq.ID,
			})
			require.NoError(t, err)

			past, err := repos.bookings.CreateBooking(ctx, bookingRepo.CreateBookingOptions{
				Start:    time.Now().UTC().Add(-48 * time.Hour),
				End:      time.Now().UTC().Add(-24 * time.Hour),
				ItemID:   drill.ID,
				BookerID: booker.ID,
				Status:   model.BookingStatusApproved,
			})
			require.NoError(t, err)
			onLadder, err := repos.bookings.CreateBooking(ctx, bookingRepo.CreateBookingOptions{
				Start:    time.Now().UTC().Add(24 * time.Hour),
				End:      time.Now().UTC().Add(48 * time.Hour),
				ItemID:   ladder.ID,
				BookerID: owner.ID,
				Status:   model.BookingStatusWaiting,
			})
			require.NoError(t, err)
			_, err = repos.comments.CreateComment(ctx, commentRepo.CreateCommentOptions{Text: "Great", ItemID: drill.ID, AuthorID: booker.ID, Created: time.Now().UTC()})
			require.NoError(t, err)

			users := userUC.New(repos.users, l)
			require.NoError(t, users.Delete(ctx, owner.ID))

			_, err = users.Detail(ctx, owner.ID)
			assert.ErrorIs(t, err, user.ErrUserNotFound)

			gone, err := repos.items.GetOneItem(ctx, drill.ID)
			require.NoError(t, err)
			assert.Zero(t, gone.ID)

			found, err := repos.items.ListItems(ctx, itemRepo.ListItemsOptions{Text: "drill", AvailableOnly: true})
			require.NoError(t, err)
			assert.Empty(t, found)

			kept, err := repos.items.GetOneItem(ctx, ladder.ID)
			require.NoError(t, err)
			assert.Equal(t, ladder.ID, kept.ID)
			assert.Nil(t, kept.RequestID)

			req, err := repos.requests.GetOneRequest(ctx, ownerReq.ID)
			require.NoError(t, err)
			assert.Zero(t, req.ID)

			for _, id := range []int64{past.ID, onLadder.ID} {
				b, err := repos.bookings.GetOneBooking(ctx, id)
				require.NoError(t, err)
				assert.Zero(t, b.ID)
			}

			comments, err := repos.comments.ListComments(ctx, commentRepo.ListCommentsOptions{ItemIDs: []int64{drill.ID}})
			require.NoError(t, err)
			assert.Empty(t, comments)

			bookings := bookingUC.New(repos.bookings, repos.txm, users, repos.items, nil, l)
			_, err = bookings.Create(ctx, model.Scope{UserID: booker.ID}, booking.CreateBookingInput{
				ItemID: drill.ID,
				Start:  time.Now().UTC().Add(time.Hour),
				End:    time.Now().UTC().Add(2 * time.Hour),
			})
			assert.ErrorIs(t, err, booking.ErrItemNotFound)
		})
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	for name, newServer := range backends() {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t)
			repos, err := srv.newRepositories()
			require.NoError(t, err)
			ctx := context.Background()
			users := userUC.New(repos.users, log.NewNop())

			_, err = users.Create(ctx, user.CreateUserInput{Name: "Alice", Email: "alice@mail.com"})
			require.NoError(t, err)
			bob, err := users.Create(ctx, user.CreateUserInput{Name: "Bob", Email: "bob@mail.com"})
			require.NoError(t, err)

			_, err = users.Update(ctx, user.UpdateUserInput{ID: bob.ID, Email: "alice@mail.com"})
			assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)

			stored, err := users.Detail(ctx, bob.ID)
			require.NoError(t, err)
			assert.Equal(t, "bob@mail.com", stored.Email)
		})
	}
}
