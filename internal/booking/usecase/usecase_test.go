package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
	bookingMemory "shareit/internal/booking/repository/memory"
	itemRepo "shareit/internal/item/repository"
	itemMemory "shareit/internal/item/repository/memory"
	"shareit/internal/model"
	"shareit/internal/storage/memory"
	"shareit/internal/user"
	userMemory "shareit/internal/user/repository/memory"
	userUC "shareit/internal/user/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	published []int64
	withdrawn []int64
	err       error
}

func (m *mockCalendar) Publish(ctx context.Context, b model.Booking) error {
	m.published = append(m.published, b.ID)
	return m.err
}

func (m *mockCalendar) Withdraw(ctx context.Context, b model.Booking) error {
	m.withdrawn = append(m.withdrawn, b.ID)
	return m.err
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db       *memory.DB
	uc       *implUseCase
	items    itemRepo.Repository
	calendar *mockCalendar

	booker model.User // id 1
	owner  model.User // id 2
	other  model.User // id 3
	item   model.Item // owned by owner, available
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	l := &mockLogger{}

	f := &fixture{db: memory.New(), calendar: &mockCalendar{}}
	users := userUC.New(userMemory.New(f.db), l)
	f.items = itemMemory.New(f.db)

	var err error
	f.booker, err = users.Create(ctx, user.CreateUserInput{Name: "Booker", Email: "booker@mail.com"})
	require.NoError(t, err)
	f.owner, err = users.Create(ctx, user.CreateUserInput{Name: "Owner", Email: "owner@mail.com"})
	require.NoError(t, err)
	f.other, err = users.Create(ctx, user.CreateUserInput{Name: "Other", Email: "other@mail.com"})
	require.NoError(t, err)

	f.item = f.newItem(t, f.owner.ID, true)

	f.uc = New(bookingMemory.New(f.db), f.db, users, f.items, f.calendar, l).(*implUseCase)
	f.uc.now = func() time.Time { return now }
	return f
}

func (f *fixture) newItem(t *testing.T, ownerID int64, available bool) model.Item {
	t.Helper()
	it, err := f.items.CreateItem(context.Background(), itemRepo.CreateItemOptions{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   available,
		OwnerID:     ownerID,
	})
	require.NoError(t, err)
	return it
}

func (f *fixture) book(t *testing.T, bookerID, itemID int64, start, end time.Time) model.Booking {
	t.Helper()
	b, err := f.uc.Create(context.Background(), model.Scope{UserID: bookerID}, booking.CreateBookingInput{
		ItemID: itemID,
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)
	return b
}

func (f *fixture) decide(bookingID, actor int64, approve bool) (model.Booking, error) {
	return f.uc.UpdateStatus(context.Background(), model.Scope{UserID: actor}, booking.UpdateStatusInput{
		ID:       bookingID,
		Approved: approve,
	})
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	unavailable := f.newItem(t, f.owner.ID, false)

	start := now.Add(time.Hour)
	tcs := map[string]struct {
		actor   int64
		itemID  int64
		start   time.Time
		end     time.Time
		wantErr error
	}{
		"success":              {actor: f.booker.ID, itemID: f.item.ID, start: start, end: start.Add(time.Hour)},
		"start in the past":    {actor: f.booker.ID, itemID: f.item.ID, start: now.Add(-48 * time.Hour), end: now.Add(-24 * time.Hour)},
		"unknown item":         {actor: f.booker.ID, itemID: 999, start: start, end: start.Add(time.Hour), wantErr: booking.ErrItemNotFound},
		"unavailable item":     {actor: f.booker.ID, itemID: unavailable.ID, start: start, end: start.Add(time.Hour), wantErr: booking.ErrItemUnavailable},
		"unavailable by owner": {actor: f.owner.ID, itemID: unavailable.ID, start: start, end: start.Add(time.Hour), wantErr: booking.ErrItemUnavailable},
		"own item":             {actor: f.owner.ID, itemID: f.item.ID, start: start, end: start.Add(time.Hour), wantErr: booking.ErrSelfBooking},
		"end before start":     {actor: f.booker.ID, itemID: f.item.ID, start: start, end: start.Add(-time.Minute), wantErr: booking.ErrInvalidDates},
		"end equals start":     {actor: f.booker.ID, itemID: f.item.ID, start: start, end: start, wantErr: booking.ErrInvalidDates},
		"unknown booker":       {actor: 404, itemID: f.item.ID, start: start, end: start.Add(time.Hour), wantErr: booking.ErrUserNotFound},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			b, err := f.uc.Create(context.Background(), model.Scope{UserID: tc.actor}, booking.CreateBookingInput{
				ItemID: tc.itemID,
				Start:  tc.start,
				End:    tc.end,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.BookingStatusWaiting, b.Status)
			assert.Equal(t, tc.actor, b.Booker.ID)
			assert.Equal(t, "Booker", b.Booker.Name)
			assert.Equal(t, f.item.ID, b.Item.ID)
			assert.Equal(t, f.owner.ID, b.Item.OwnerID)
			assert.Equal(t, int64(1), b.Version)
		})
	}
}

func TestCreateSelfBookingAnyOwnedItem(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		it := f.newItem(t, f.booker.ID, true)
		_, err := f.uc.Create(context.Background(), model.Scope{UserID: f.booker.ID}, booking.CreateBookingInput{
			ItemID: it.ID,
			Start:  now.Add(time.Hour),
			End:    now.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrSelfBooking)
	}
}

func TestLifecycleScenario(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 1, 1, 1, 1, 1, 0, time.UTC)
	end := time.Date(2024, 1, 2, 1, 1, 1, 0, time.UTC)

	b := f.book(t, f.booker.ID, f.item.ID, start, end)
	assert.Equal(t, model.BookingStatusWaiting, b.Status)

	approved, err := f.decide(b.ID, f.owner.ID, true)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusApproved, approved.Status)
	assert.Equal(t, int64(2), approved.Version)

	_, err = f.decide(b.ID, f.owner.ID, true)
	assert.ErrorIs(t, err, booking.ErrAlreadyApproved)

	rejected, err := f.decide(b.ID, f.owner.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusRejected, rejected.Status)

	for _, approve := range []bool{true, false} {
		again, err := f.decide(b.ID, f.owner.ID, approve)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusRejected, again.Status)
		assert.Equal(t, rejected.Version, again.Version)
	}

	assert.Equal(t, []int64{b.ID}, f.calendar.published)
	assert.Equal(t, []int64{b.ID}, f.calendar.withdrawn)
}

func TestUpdateStatusRejectFromWaiting(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))

	rejected, err := f.decide(b.ID, f.owner.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusRejected, rejected.Status)
	assert.Empty(t, f.calendar.published)
	assert.Empty(t, f.calendar.withdrawn)
}

func TestUpdateStatusNonOwnerForbiddenInEveryState(t *testing.T) {
	f := newFixture(t)

	waiting := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))
	approved := f.book(t, f.booker.ID, f.item.ID, now.Add(3*time.Hour), now.Add(4*time.Hour))
	rejected := f.book(t, f.booker.ID, f.item.ID, now.Add(5*time.Hour), now.Add(6*time.Hour))
	_, err := f.decide(approved.ID, f.owner.ID, true)
	require.NoError(t, err)
	_, err = f.decide(rejected.ID, f.owner.ID, false)
	require.NoError(t, err)

	for _, id := range []int64{waiting.ID, approved.ID, rejected.ID} {
		for _, actor := range []int64{f.booker.ID, f.other.ID} {
			for _, approve := range []bool{true, false} {
				_, err := f.decide(id, actor, approve)
				assert.ErrorIs(t, err, booking.ErrNotItemOwner, "booking %d actor %d approve %v", id, actor, approve)
			}
		}
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.decide(42, f.owner.ID, true)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	b := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))
	_, err = f.decide(b.ID, 404, true)
	assert.ErrorIs(t, err, booking.ErrUserNotFound)
}

func TestUpdateStatusCalendarFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.calendar.err = errors.New("calendar down")
	b := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))

	approved, err := f.decide(b.ID, f.owner.ID, true)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusApproved, approved.Status)
}

// racingRepo lets another writer change the booking between read and write.
type racingRepo struct {
	repository.Repository
}

func (r racingRepo) UpdateBookingStatus(ctx context.Context, opt repository.UpdateStatusOptions) (model.Booking, error) {
	if _, err := r.Repository.UpdateBookingStatus(ctx, repository.UpdateStatusOptions{
		ID:              opt.ID,
		Status:          model.BookingStatusRejected,
		ExpectedVersion: opt.ExpectedVersion,
	}); err != nil {
		return model.Booking{}, err
	}
	return r.Repository.UpdateBookingStatus(ctx, opt)
}

func TestUpdateStatusVersionConflict(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))

	f.uc.repo = racingRepo{Repository: f.uc.repo}
	_, err := f.decide(b.ID, f.owner.ID, true)
	assert.ErrorIs(t, err, booking.ErrVersionConflict)
	assert.Empty(t, f.calendar.published)

	stored, err := bookingMemory.New(f.db).GetOneBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusRejected, stored.Status)
}

func TestDetail(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))
	ctx := context.Background()

	for _, actor := range []int64{f.booker.ID, f.owner.ID} {
		got, err := f.uc.Detail(ctx, model.Scope{UserID: actor}, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	}

	_, err := f.uc.Detail(ctx, model.Scope{UserID: f.other.ID}, b.ID)
	assert.ErrorIs(t, err, booking.ErrNotParticipant)

	_, err = f.uc.Detail(ctx, model.Scope{UserID: f.other.ID}, 999)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestDetailAfterItemDeleted(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, f.booker.ID, f.item.ID, now.Add(time.Hour), now.Add(2*time.Hour))
	require.NoError(t, f.items.DeleteItem(context.Background(), itemRepo.DeleteItemOptions{ID: f.item.ID, At: now}))

	got, err := f.uc.Detail(context.Background(), model.Scope{UserID: f.owner.ID}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drill", got.Item.Name)
}

func ids(bookings []model.Booking) []int64 {
	out := make([]int64, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestListStates(t *testing.T) {
	f := newFixture(t)
	h := time.Hour

	// ids 1..5 in creation order; edge starts exactly at now.
	past := f.book(t, f.booker.ID, f.item.ID, now.Add(-48*h), now.Add(-24*h))
	current := f.book(t, f.booker.ID, f.item.ID, now.Add(-h), now.Add(h))
	future := f.book(t, f.booker.ID, f.item.ID, now.Add(24*h), now.Add(48*h))
	rejected := f.book(t, f.booker.ID, f.item.ID, now.Add(72*h), now.Add(96*h))
	edge := f.book(t, f.booker.ID, f.item.ID, now, now.Add(h))
	_, err := f.decide(rejected.ID, f.owner.ID, false)
	require.NoError(t, err)
	_, err = f.decide(future.ID, f.owner.ID, true)
	require.NoError(t, err)

	// A booking by someone else on another item must never show up for the booker.
	otherItem := f.newItem(t, f.booker.ID, true)
	f.book(t, f.other.ID, otherItem.ID, now.Add(h), now.Add(2*h))

	tcs := map[string]struct {
		state string
		want  []int64
	}{
		"empty is all": {state: "", want: []int64{rejected.ID, future.ID, edge.ID, current.ID, past.ID}},
		"all":          {state: "ALL", want: []int64{rejected.ID, future.ID, edge.ID, current.ID, past.ID}},
		"current":      {state: "CURRENT", want: []int64{edge.ID, current.ID}},
		"future":       {state: "FUTURE", want: []int64{rejected.ID, future.ID}},
		"past":         {state: "PAST", want: []int64{past.ID}},
		"waiting":      {state: "WAITING", want: []int64{edge.ID, current.ID, past.ID}},
		"rejected":     {state: "REJECTED", want: []int64{rejected.ID}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := f.uc.ListForBooker(context.Background(), model.Scope{UserID: f.booker.ID}, booking.ListInput{
				State: tc.state,
				Page:  model.Page{From: 0, Size: 20},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))

			got, err = f.uc.ListForOwner(context.Background(), model.Scope{UserID: f.owner.ID}, booking.ListInput{
				State: tc.state,
				Page:  model.Page{From: 0, Size: 20},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestListUnsupportedState(t *testing.T) {
	f := newFixture(t)

	for _, state := range []string{"UNSUPPORTED", "APPROVED", "all", "Current"} {
		_, err := f.uc.ListForBooker(context.Background(), model.Scope{UserID: f.booker.ID}, booking.ListInput{
			State: state,
			Page:  model.Page{From: 0, Size: 10},
		})
		require.ErrorIs(t, err, booking.ErrUnsupportedState)
		assert.Equal(t, "Unknown state: "+state, err.Error())
	}
}

func TestListPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.book(t, f.booker.ID, f.item.ID, now.Add(time.Duration(i+1)*time.Hour), now.Add(time.Duration(i+2)*time.Hour))
	}
	// ids 1..5, later ids start later, so start desc is 5,4,3,2,1.

	tcs := map[string]struct {
		page    model.Page
		want    []int64
		wantErr error
	}{
		"first page":   {page: model.Page{From: 0, Size: 2}, want: []int64{5, 4}},
		"second page":  {page: model.Page{From: 2, Size: 2}, want: []int64{3, 2}},
		"rounded down": {page: model.Page{From: 3, Size: 2}, want: []int64{3, 2}},
		"last page":    {page: model.Page{From: 4, Size: 2}, want: []int64{1}},
		"past the end": {page: model.Page{From: 10, Size: 2}, want: []int64{}},
		"negative":     {page: model.Page{From: -1, Size: 2}, wantErr: booking.ErrInvalidPage},
		"zero size":    {page: model.Page{From: 0, Size: 0}, wantErr: booking.ErrInvalidPage},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := f.uc.ListForBooker(context.Background(), model.Scope{UserID: f.booker.ID}, booking.ListInput{
				State: "ALL",
				Page:  tc.page,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestListRoundTrip(t *testing.T) {
	f := newFixture(t)
	h := time.Hour
	starts := []time.Duration{5 * h, -3 * h, 40 * h, 0, -100 * h}

	var want []int64
	for _, s := range starts {
		want = append(want, f.book(t, f.booker.ID, f.item.ID, now.Add(s), now.Add(s+h)).ID)
	}
	// start desc: 40h(3), 5h(1), 0(4), -3h(2), -100h(5)
	want = []int64{want[2], want[0], want[3], want[1], want[4]}

	got, err := f.uc.ListForBooker(context.Background(), model.Scope{UserID: f.booker.ID}, booking.ListInput{
		State: "ALL",
		Page:  model.Page{From: 0, Size: len(starts)},
	})
	require.NoError(t, err)
	assert.Equal(t, want, ids(got))

	_, err = f.uc.ListForBooker(context.Background(), model.Scope{UserID: 404}, booking.ListInput{
		State: "ALL",
		Page:  model.Page{From: 0, Size: 10},
	})
	assert.ErrorIs(t, err, booking.ErrUserNotFound)
}

func TestItemBookingSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	h := time.Hour

	old := f.book(t, f.booker.ID, f.item.ID, now.Add(-72*h), now.Add(-48*h))
	recent := f.book(t, f.other.ID, f.item.ID, now.Add(-30*h), now.Add(-24*h))
	recentRejected := f.book(t, f.booker.ID, f.item.ID, now.Add(-3*h), now.Add(-2*h))
	soonWaiting := f.book(t, f.booker.ID, f.item.ID, now.Add(h), now.Add(2*h))
	later := f.book(t, f.other.ID, f.item.ID, now.Add(24*h), now.Add(25*h))
	latest := f.book(t, f.booker.ID, f.item.ID, now.Add(48*h), now.Add(49*h))

	_, err := f.decide(recentRejected.ID, f.owner.ID, false)
	require.NoError(t, err)
	_, err = f.decide(later.ID, f.owner.ID, true)
	require.NoError(t, err)
	_, err = f.decide(latest.ID, f.owner.ID, true)
	require.NoError(t, err)

	last, err := f.uc.LastForItem(ctx, f.item.ID, now)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, recent.ID, last.ID)

	next, err := f.uc.NextForItem(ctx, f.item.ID, now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, later.ID, next.ID, "waiting booking %d must be skipped", soonWaiting.ID)

	none, err := f.uc.LastForItem(ctx, f.item.ID, now.Add(-100*h))
	require.NoError(t, err)
	assert.Nil(t, none)

	ok, err := f.uc.CompletedBookingExists(ctx, f.booker.ID, f.item.ID, now)
	require.NoError(t, err)
	assert.True(t, ok, "booking %d finished before now", old.ID)

	ok, err = f.uc.CompletedBookingExists(ctx, f.owner.ID, f.item.ID, now)
	require.NoError(t, err)
	assert.False(t, ok)
}
