package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmbook/pkg/auth/controller"
	"farmbook/pkg/auth/session"
	"farmbook/pkg/contract"
	"farmbook/pkg/middleware"
)

type authCtrl struct {
	sessions *session.Manager
	devLogin bool
	log      *zap.Logger
}

// NewAuthController serves the login surface. With devLogin off the login
// endpoint answers 404 and identities must come from an upstream proxy.
func NewAuthController(sessions *session.Manager, devLogin bool, log *zap.Logger) controller.AuthController {
	return &authCtrl{sessions: sessions, devLogin: devLogin, log: log}
}

// Login issues a session for the given user id: ?uid= on GET, a LoginInput
// body on POST.
func (h *authCtrl) Login(c echo.Context) error {
	if !h.devLogin {
		return echo.ErrNotFound
	}
	var in contract.LoginInput
	if c.Request().Method == http.MethodGet {
		in.UserID = c.QueryParam("uid")
		if err := c.Validate(&in); err != nil {
			return err
		}
	} else if err := contract.Bind(c, &in); err != nil {
		return err
	}

	ck, err := h.sessions.Issue(in.UserID)
	if err != nil {
		return contract.Internal("Failed to start session", err)
	}
	c.SetCookie(ck)
	h.log.Info("dev login", zap.String("uid", in.UserID))
	return c.JSON(http.StatusOK, contract.Identity{UserID: in.UserID})
}

func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear())
	if c.Request().Method == http.MethodGet {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return contract.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, contract.Identity{UserID: uid})
}
