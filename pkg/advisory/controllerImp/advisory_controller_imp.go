package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/advisory/controller"
	"farmbook/pkg/advisory/render"
	"farmbook/pkg/advisory/service"
	"farmbook/pkg/contract"
	"farmbook/pkg/middleware"
)

type AdvisoryCtrl struct{ svc service.AdvisoryService }

func New(svc service.AdvisoryService) controller.AdvisoryController { return &AdvisoryCtrl{svc} }

func (h *AdvisoryCtrl) List(c echo.Context) error {
	filter, err := contract.ParseFilter(c.QueryParams())
	if err != nil {
		return err
	}
	format := c.QueryParam("format")
	if format != "" && format != contract.FormatRaw && format != contract.FormatPlain {
		return contract.Invalid("format", "format must be one of: raw, plain")
	}
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c), filter)
	if err != nil {
		return err
	}
	// Stored content is never rewritten; plain only changes this response.
	if format == contract.FormatPlain {
		for i := range out {
			out[i].Content = render.PlainText(out[i].Content)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdvisoryCtrl) Generate(c echo.Context) error {
	var in contract.GenerateAdvisoryInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	a, err := h.svc.Generate(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}
