package controller

import "github.com/labstack/echo/v4"

type GuideController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Facets(c echo.Context) error
	Export(c echo.Context) error
}
