package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingMemory "shareit/internal/booking/repository/memory"
	"shareit/internal/booking/usecase"
	itemRepo "shareit/internal/item/repository"
	itemMemory "shareit/internal/item/repository/memory"
	"shareit/internal/middleware"
	"shareit/internal/storage/memory"
	"shareit/internal/user"
	userMemory "shareit/internal/user/repository/memory"
	userUC "shareit/internal/user/usecase"
	"shareit/pkg/log"
	"shareit/pkg/validation"
)

type testServer struct {
	router  *gin.Engine
	itemID  int64
	booker  int64
	owner   int64
	outside int64
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	ctx := context.Background()
	l := log.NewNop()
	db := memory.New()
	users := userUC.New(userMemory.New(db), l)
	items := itemMemory.New(db)

	s := &testServer{}
	for i, email := range []string{"booker@mail.com", "owner@mail.com", "outside@mail.com"} {
		u, err := users.Create(ctx, user.CreateUserInput{Name: email, Email: email})
		require.NoError(t, err)
		switch i {
		case 0:
			s.booker = u.ID
		case 1:
			s.owner = u.ID
		case 2:
			s.outside = u.ID
		}
	}
	it, err := items.CreateItem(ctx, itemRepo.CreateItemOptions{Name: "Drill", Description: "d", Available: true, OwnerID: s.owner})
	require.NoError(t, err)
	s.itemID = it.ID

	uc := usecase.New(bookingMemory.New(db), db, users, items, nil, l)
	mw := middleware.New(l, nil, middleware.Config{})

	s.router = gin.New()
	RegisterRoutes(s.router.Group("/bookings"), New(l, uc, nil), mw)
	return s
}

func (s *testServer) do(method, path string, userID int64, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(userID, 10))
	}
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestBookingRoutes(t *testing.T) {
	s := newTestServer(t)
	start := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02T15:04:05")
	end := time.Now().UTC().Add(48 * time.Hour).Format("2006-01-02T15:04:05")
	body := `{"itemId":` + strconv.FormatInt(s.itemID, 10) + `,"start":"` + start + `","end":"` + end + `"}`

	w := s.do(http.MethodPost, "/bookings", s.booker, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created bookingResp
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	assert.Equal(t, "WAITING", created.Status)
	assert.Equal(t, start, time.Time(created.Start).Format("2006-01-02T15:04:05"))
	path := "/bookings/" + strconv.FormatInt(created.ID, 10)

	tcs := []struct {
		name   string
		method string
		path   string
		user   int64
		body   string
		code   int
	}{
		{"missing header", http.MethodGet, path, 0, "", http.StatusBadRequest},
		{"self booking", http.MethodPost, "/bookings", s.owner, body, http.StatusForbidden},
		{"end before start", http.MethodPost, "/bookings", s.booker, `{"itemId":1,"start":"` + end + `","end":"` + start + `"}`, http.StatusBadRequest},
		{"missing dates", http.MethodPost, "/bookings", s.booker, `{"itemId":1}`, http.StatusBadRequest},
		{"unknown item", http.MethodPost, "/bookings", s.booker, `{"itemId":99,"start":"` + start + `","end":"` + end + `"}`, http.StatusNotFound},
		{"detail by booker", http.MethodGet, path, s.booker, "", http.StatusOK},
		{"detail by outsider", http.MethodGet, path, s.outside, "", http.StatusForbidden},
		{"detail unknown", http.MethodGet, "/bookings/999", s.booker, "", http.StatusNotFound},
		{"approve by booker", http.MethodPatch, path + "?approved=true", s.booker, "", http.StatusForbidden},
		{"approve missing flag", http.MethodPatch, path, s.owner, "", http.StatusBadRequest},
		{"approve by owner", http.MethodPatch, path + "?approved=true", s.owner, "", http.StatusOK},
		{"approve twice", http.MethodPatch, path + "?approved=true", s.owner, "", http.StatusBadRequest},
		{"revoke", http.MethodPatch, path + "?approved=false", s.owner, "", http.StatusOK},
		{"approve rejected", http.MethodPatch, path + "?approved=true", s.owner, "", http.StatusOK},
		{"reject rejected", http.MethodPatch, path + "?approved=false", s.owner, "", http.StatusOK},
		{"list unknown state", http.MethodGet, "/bookings?state=UNSUPPORTED", s.booker, "", http.StatusBadRequest},
		{"list bad page", http.MethodGet, "/bookings?from=-1", s.booker, "", http.StatusBadRequest},
		{"list for booker", http.MethodGet, "/bookings?state=REJECTED", s.booker, "", http.StatusOK},
		{"list for owner", http.MethodGet, "/bookings/owner", s.owner, "", http.StatusOK},
		{"list unknown user", http.MethodGet, "/bookings", 404, "", http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(tc.method, tc.path, tc.user, tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			if tc.code >= 400 {
				assert.Equal(t, tc.code, decode(t, w).ErrorCode)
			}
		})
	}

	w = s.do(http.MethodGet, "/bookings/owner?state=REJECTED&from=0&size=5", s.owner, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []bookingResp
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "REJECTED", listed[0].Status)
}

func TestUnsupportedStateMessage(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/bookings/owner?state=LATER", s.owner, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown state: LATER", decode(t, w).Message)
}
