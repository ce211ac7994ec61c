package controller

import "github.com/labstack/echo/v4"

type AdvisoryController interface {
	List(c echo.Context) error
	Generate(c echo.Context) error
}
