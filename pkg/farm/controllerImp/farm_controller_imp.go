package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/contract"
	"farmbook/pkg/farm/controller"
	"farmbook/pkg/farm/service"
	"farmbook/pkg/middleware"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) controller.FarmController { return &FarmCtrl{svc} }

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var in contract.CreateFarmInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	f, err := h.svc.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Get(c echo.Context) error {
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

func (h *FarmCtrl) Update(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	var in contract.UpdateFarmInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	f, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
