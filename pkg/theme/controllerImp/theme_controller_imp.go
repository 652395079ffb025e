package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	Cookie = "theme"
	Light  = "light"
	Dark   = "dark"
)

type ThemeCtrl struct{}

func New() *ThemeCtrl { return &ThemeCtrl{} }

type themeReq struct {
	Theme string `json:"theme"`
}

func current(c echo.Context) string {
	if ck, err := c.Cookie(Cookie); err == nil && ck.Value == Dark {
		return Dark
	}
	return Light
}

func set(c echo.Context, theme string) error {
	c.SetCookie(&http.Cookie{
		Name:     Cookie,
		Value:    theme,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"theme": theme})
}

func (h *ThemeCtrl) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"theme": current(c)})
}

func (h *ThemeCtrl) Set(c echo.Context) error {
	var req themeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.Theme != Light && req.Theme != Dark {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theme must be light or dark"})
	}
	return set(c, req.Theme)
}

func (h *ThemeCtrl) Toggle(c echo.Context) error {
	if current(c) == Dark {
		return set(c, Light)
	}
	return set(c, Dark)
}
