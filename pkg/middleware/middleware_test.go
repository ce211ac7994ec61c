package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmbook/pkg/auth/session"
	"farmbook/pkg/contract"
	"farmbook/pkg/ownership"
)

type fakeChecker struct {
	owners map[uint]string
	calls  int
}

func (f *fakeChecker) Check(_ context.Context, uid string, kind ownership.Kind, id uint) error {
	f.calls++
	owner, ok := f.owners[id]
	if !ok {
		return contract.NotFound(string(kind), id)
	}
	if owner != uid {
		return contract.ErrForbidden
	}
	return nil
}

func newEcho(m *session.Manager, trustProxy bool, checker ownership.Checker) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = contract.ErrorHandler(zap.NewNop(), false)
	e.Use(Session(m, trustProxy))
	g := e.Group("", RequireAuth())
	g.GET("/me", func(c echo.Context) error { return c.String(http.StatusOK, UserID(c)) })
	g.GET("/farms/:id", func(c echo.Context) error {
		id, err := PathID(c, "id")
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]uint{"id": id})
	}, RequireOwner(checker, ownership.Farm, "id"))
	return e
}

func do(e *echo.Echo, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSession_Cookie(t *testing.T) {
	m := session.NewManager("secret", time.Hour, false)
	e := newEcho(m, false, &fakeChecker{})

	rec := do(e, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())

	ck, err := m.Issue("alice")
	require.NoError(t, err)
	rec = do(e, "/me", func(r *http.Request) { r.AddCookie(ck) })
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())

	rec = do(e, "/me", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_ProxyHeader(t *testing.T) {
	m := session.NewManager("secret", time.Hour, false)
	withHeader := func(r *http.Request) { r.Header.Set(ProxyUserHeader, "carol") }

	rec := do(newEcho(m, false, &fakeChecker{}), "/me", withHeader)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "header ignored unless trusted")

	rec = do(newEcho(m, true, &fakeChecker{}), "/me", withHeader)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "carol", rec.Body.String())
}

func TestRequireOwner(t *testing.T) {
	m := session.NewManager("secret", time.Hour, false)
	checker := &fakeChecker{owners: map[uint]string{1: "alice", 2: "bob"}}
	e := newEcho(m, false, checker)
	ck, err := m.Issue("alice")
	require.NoError(t, err)
	auth := func(r *http.Request) { r.AddCookie(ck) }

	tests := []struct {
		path   string
		status int
	}{
		{"/farms/1", http.StatusOK},
		{"/farms/2", http.StatusUnauthorized},
		{"/farms/3", http.StatusNotFound},
		{"/farms/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(e, tt.path, auth)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	calls := checker.calls
	rec := do(e, "/farms/1", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, calls, checker.calls, "anonymous requests never reach the gate")
}
