package controllerImp

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"plantscan/pkg/guide/seed"
	"plantscan/pkg/guide/service"
	"plantscan/pkg/logger"
)

type GuideCtrl struct{ s service.GuideService }

func New(s service.GuideService) *GuideCtrl { return &GuideCtrl{s} }

func queryFrom(c echo.Context) service.Query {
	return service.Query{
		Q:        c.QueryParam("q"),
		Family:   c.QueryParam("family"),
		Region:   c.QueryParam("region"),
		Sunlight: c.QueryParam("sunlight"),
		Water:    c.QueryParam("water"),
		Sort:     c.QueryParam("sort"),
	}
}

func (h *GuideCtrl) List(c echo.Context) error {
	plants, err := h.s.List(queryFrom(c))
	if err != nil {
		logger.For("guide").WithError(err).Error("list failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(plants), "plants": plants})
}

func (h *GuideCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(c.Param("id"))
	if errors.Is(err, service.ErrPlantNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *GuideCtrl) Facets(c echo.Context) error {
	f, err := h.s.Facets()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *GuideCtrl) Export(c echo.Context) error {
	plants, err := h.s.List(queryFrom(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := seed.WriteXLSX(&buf, plants); err != nil {
		logger.For("guide").WithError(err).Error("export failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="plant-guide.xlsx"`)
	return c.Blob(http.StatusOK, seed.MIMEXLSX, buf.Bytes())
}
