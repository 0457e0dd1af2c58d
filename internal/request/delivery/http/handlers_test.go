package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/middleware"
	"shareit/internal/model"
	requestMemory "shareit/internal/request/repository/memory"
	"shareit/internal/request/usecase"
	"shareit/internal/storage/memory"
	"shareit/internal/user"
	userMemory "shareit/internal/user/repository/memory"
	userUC "shareit/internal/user/usecase"
	"shareit/pkg/log"
	"shareit/pkg/validation"
)

type fakeItems struct {
	byRequest map[int64][]model.Item
}

func (f fakeItems) ItemsByRequests(_ context.Context, ids []int64) (map[int64][]model.Item, error) {
	out := make(map[int64][]model.Item, len(ids))
	for _, id := range ids {
		if items, ok := f.byRequest[id]; ok {
			out[id] = items
		}
	}
	return out, nil
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.Register()

	ctx := context.Background()
	l := log.NewNop()
	db := memory.New()
	users := userUC.New(userMemory.New(db), l)

	alice, err := users.Create(ctx, user.CreateUserInput{Name: "Alice", Email: "alice@mail.com"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, user.CreateUserInput{Name: "Bob", Email: "bob@mail.com"})
	require.NoError(t, err)

	items := fakeItems{byRequest: map[int64][]model.Item{}}
	uc := usecase.New(requestMemory.New(db), users, items, l)

	router := gin.New()
	RegisterRoutes(router.Group("/requests"), New(l, uc, nil), middleware.New(l, nil, middleware.Config{}))

	do := func(method, path string, userID int64, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if userID != 0 {
			req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(userID, 10))
		}
		router.ServeHTTP(w, req)
		return w
	}
	decode := func(t *testing.T, w *httptest.ResponseRecorder, out any) {
		t.Helper()
		env := struct {
			Data any `json:"data"`
		}{Data: out}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}

	w := do(http.MethodPost, "/requests", alice.ID, `{"description":"Need a drill"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created requestResp
	decode(t, w, &created)
	assert.Equal(t, "Need a drill", created.Description)
	assert.Equal(t, alice.ID, created.RequesterID)
	assert.Empty(t, created.Items)

	items.byRequest[created.ID] = []model.Item{{ID: 7, Name: "Drill", Description: "Cordless", Available: true, OwnerID: bob.ID, RequestID: &created.ID}}

	t.Run("errors", func(t *testing.T) {
		tcs := []struct {
			name   string
			method string
			path   string
			user   int64
			body   string
			code   int
		}{
			{name: "missing user header", method: http.MethodGet, path: "/requests", code: http.StatusBadRequest},
			{name: "blank description", method: http.MethodPost, path: "/requests", user: alice.ID, body: `{"description":"  "}`, code: http.StatusBadRequest},
			{name: "unknown requester", method: http.MethodPost, path: "/requests", user: 99, body: `{"description":"x"}`, code: http.StatusNotFound},
			{name: "bad id", method: http.MethodGet, path: "/requests/abc", user: alice.ID, code: http.StatusBadRequest},
			{name: "unknown request", method: http.MethodGet, path: "/requests/99", user: alice.ID, code: http.StatusNotFound},
			{name: "negative from", method: http.MethodGet, path: "/requests/all?from=-1&size=10", user: bob.ID, code: http.StatusBadRequest},
			{name: "zero size", method: http.MethodGet, path: "/requests/all?from=0&size=0", user: bob.ID, code: http.StatusBadRequest},
		}
		for _, tc := range tcs {
			t.Run(tc.name, func(t *testing.T) {
				w := do(tc.method, tc.path, tc.user, tc.body)
				assert.Equal(t, tc.code, w.Code, w.Body.String())
			})
		}
	})

	t.Run("own", func(t *testing.T) {
		w := do(http.MethodGet, "/requests", alice.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list []requestResp
		decode(t, w, &list)
		require.Len(t, list, 1)
		require.Len(t, list[0].Items, 1)
		assert.Equal(t, "Drill", list[0].Items[0].Name)
	})

	t.Run("others", func(t *testing.T) {
		w := do(http.MethodGet, "/requests/all", bob.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list []requestResp
		decode(t, w, &list)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)

		w = do(http.MethodGet, "/requests/all", alice.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &list)
		assert.Empty(t, list)
	})

	t.Run("detail", func(t *testing.T) {
		w := do(http.MethodGet, "/requests/"+strconv.FormatInt(created.ID, 10), bob.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var got requestResp
		decode(t, w, &got)
		assert.Equal(t, created.ID, got.ID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, bob.ID, got.Items[0].OwnerID)
	})
}
