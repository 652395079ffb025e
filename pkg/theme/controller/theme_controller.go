package controller

import "github.com/labstack/echo/v4"

type ThemeController interface {
	Get(c echo.Context) error
	Set(c echo.Context) error
	Toggle(c echo.Context) error
}
