package middleware

import (
	"github.com/labstack/echo/v4"

	"farmbook/pkg/contract"
	"farmbook/pkg/ownership"
)

// RequireOwner guards a path-scoped route: the id in path parameter param
// must resolve, through its ownership chain, to the caller.
func RequireOwner(g ownership.Checker, kind ownership.Kind, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := UserID(c)
			if uid == "" {
				return contract.ErrUnauthenticated
			}
			id, err := contract.ParseID(param, c.Param(param))
			if err != nil {
				return err
			}
			if err := g.Check(c.Request().Context(), uid, kind, id); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// PathID parses a positive integer path parameter.
func PathID(c echo.Context, param string) (uint, error) {
	return contract.ParseID(param, c.Param(param))
}
