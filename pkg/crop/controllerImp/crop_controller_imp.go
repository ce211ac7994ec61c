package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmbook/pkg/contract"
	"farmbook/pkg/crop/controller"
	"farmbook/pkg/crop/service"
	"farmbook/pkg/middleware"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) controller.CropController { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	fieldID, err := middleware.PathID(c, "fieldId")
	if err != nil {
		return err
	}
	out, err := h.svc.List(c.Request().Context(), fieldID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	fieldID, err := middleware.PathID(c, "fieldId")
	if err != nil {
		return err
	}
	var in contract.CreateCropInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	crop, err := h.svc.Create(c.Request().Context(), fieldID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, crop)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	crop, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	var in contract.UpdateCropInput
	if err := contract.Bind(c, &in); err != nil {
		return err
	}
	crop, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}
