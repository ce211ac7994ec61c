package middleware

import (
	"github.com/labstack/echo/v4"

	"farmbook/pkg/auth/session"
	"farmbook/pkg/contract"
)

const (
	uidKey = "uid"
	// ProxyUserHeader carries the caller id when an upstream auth proxy
	// terminates the session instead of this service.
	ProxyUserHeader = "X-User-Id"
)

// Session resolves the caller from the session cookie, or from the proxy
// header when trustProxy is set. It never rejects; RequireAuth does.
func Session(m *session.Manager, trustProxy bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if trustProxy {
				uid = c.Request().Header.Get(ProxyUserHeader)
			}
			if uid == "" {
				if ck, err := c.Cookie(session.CookieName); err == nil {
					if v, err := m.Parse(ck.Value); err == nil {
						uid = v
					}
				}
			}
			if uid != "" {
				c.Set(uidKey, uid)
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no identity.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserID(c) == "" {
				return contract.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// UserID returns the resolved caller id, or "" for anonymous requests.
func UserID(c echo.Context) string {
	uid, _ := c.Get(uidKey).(string)
	return uid
}
