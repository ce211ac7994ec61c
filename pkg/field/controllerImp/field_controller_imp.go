package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/contract"
	"farmbook/pkg/field/controller"
	"farmbook/pkg/field/service"
	"farmbook/pkg/middleware"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) controller.FieldController { return &FieldCtrl{svc} }

func (h *FieldCtrl) List(c echo.Context) error {
	farmID, err := middleware.PathID(c, "farmId")
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.Request().Context(), farmID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	farmID, err := middleware.PathID(c, "farmId")
	if err != nil {
		return err
	}
	var in contract.CreateFieldInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	f, err := h.svc.Create(c.Request().Context(), farmID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	f, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	var in contract.UpdateFieldInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	f, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
