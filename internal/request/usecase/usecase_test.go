package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/model"
	"shareit/internal/request"
	requestMemory "shareit/internal/request/repository/memory"
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

// mockItems answers ItemsByRequests from a fixed map.
type mockItems struct {
	byRequest map[int64][]model.Item
	calls     int
}

func (m *mockItems) ItemsByRequests(ctx context.Context, ids []int64) (map[int64][]model.Item, error) {
	m.calls++
	out := map[int64][]model.Item{}
	for _, id := range ids {
		if items, ok := m.byRequest[id]; ok {
			out[id] = items
		}
	}
	return out, nil
}

type fixture struct {
	uc    *implUseCase
	items *mockItems
	clock time.Time
	ann   model.User
	bob   model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := memory.New()
	l := &mockLogger{}

	users := userUC.New(userMemory.New(db), l)
	ann, err := users.Create(ctx, user.CreateUserInput{Name: "Ann", Email: "ann@mail.com"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, user.CreateUserInput{Name: "Bob", Email: "bob@mail.com"})
	require.NoError(t, err)

	f := &fixture{
		items: &mockItems{byRequest: map[int64][]model.Item{}},
		clock: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		ann:   ann,
		bob:   bob,
	}
	f.uc = New(requestMemory.New(db), users, f.items, l).(*implUseCase)
	f.uc.now = func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}
	return f
}

func TestCreateAndListOwn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sc := model.Scope{UserID: f.ann.ID}

	first, err := f.uc.Create(ctx, sc, request.CreateRequestInput{Description: "a drill"})
	require.NoError(t, err)
	assert.Empty(t, first.Items)
	assert.Equal(t, f.ann.ID, first.Request.RequesterID)

	second, err := f.uc.Create(ctx, sc, request.CreateRequestInput{Description: "a ladder"})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, model.Scope{UserID: f.bob.ID}, request.CreateRequestInput{Description: "a tent"})
	require.NoError(t, err)

	drillOwner := int64(2)
	f.items.byRequest[first.Request.ID] = []model.Item{{ID: 5, Name: "Drill", OwnerID: drillOwner, RequestID: &first.Request.ID}}

	own, err := f.uc.ListOwn(ctx, sc)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, second.Request.ID, own[0].Request.ID, "newest first")
	assert.Empty(t, own[0].Items)
	require.Len(t, own[1].Items, 1)
	assert.Equal(t, int64(5), own[1].Items[0].ID)
}

func TestCreateUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), model.Scope{UserID: 99}, request.CreateRequestInput{Description: "x"})
	assert.ErrorIs(t, err, request.ErrUserNotFound)
}

func TestListOthers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.uc.Create(ctx, model.Scope{UserID: f.bob.ID}, request.CreateRequestInput{Description: "bob wants"})
		require.NoError(t, err)
	}
	_, err := f.uc.Create(ctx, model.Scope{UserID: f.ann.ID}, request.CreateRequestInput{Description: "ann wants"})
	require.NoError(t, err)

	tcs := map[string]struct {
		page    model.Page
		wantIDs []int64
		wantErr error
	}{
		"first page":     {page: model.Page{From: 0, Size: 2}, wantIDs: []int64{3, 2}},
		"second page":    {page: model.Page{From: 2, Size: 2}, wantIDs: []int64{1}},
		"from mid page":  {page: model.Page{From: 1, Size: 2}, wantIDs: []int64{3, 2}},
		"beyond the end": {page: model.Page{From: 10, Size: 2}, wantIDs: []int64{}},
		"negative from":  {page: model.Page{From: -1, Size: 2}, wantErr: request.ErrInvalidPage},
		"zero size":      {page: model.Page{From: 0, Size: 0}, wantErr: request.ErrInvalidPage},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := f.uc.ListOthers(ctx, model.Scope{UserID: f.ann.ID}, tc.page)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]int64, len(got))
			for i, d := range got {
				ids[i] = d.Request.ID
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.uc.Create(ctx, model.Scope{UserID: f.ann.ID}, request.CreateRequestInput{Description: "a drill"})
	require.NoError(t, err)

	got, err := f.uc.Detail(ctx, model.Scope{UserID: f.bob.ID}, created.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, "a drill", got.Request.Description)
	assert.NotNil(t, got.Items)

	_, err = f.uc.Detail(ctx, model.Scope{UserID: f.bob.ID}, 404)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}
