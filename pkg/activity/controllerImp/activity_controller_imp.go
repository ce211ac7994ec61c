package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/activity/controller"
	"farmbook/pkg/activity/export"
	"farmbook/pkg/activity/service"
	"farmbook/pkg/contract"
	"farmbook/pkg/middleware"
)

type ActivityCtrl struct{ svc service.ActivityService }

func New(svc service.ActivityService) controller.ActivityController { return &ActivityCtrl{svc} }

func (h *ActivityCtrl) List(c echo.Context) error {
	filter, err := contract.ParseFilter(c.QueryParams())
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var in contract.CreateActivityInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	a, err := h.svc.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActivityCtrl) Export(c echo.Context) error {
	filter, err := contract.ParseFilter(c.QueryParams())
	if err != nil {
		return err
	}
	acts, err := h.svc.List(c.Request().Context(), middleware.UserID(c), filter)
	if err != nil {
		return err
	}
	// buffer first so a render failure still gets a JSON error response
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, acts); err != nil {
		return contract.Internal("Failed to export activities", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="activities.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
