package controller

import "github.com/labstack/echo/v4"

type IdentifyController interface {
	Identify(c echo.Context) error
}
