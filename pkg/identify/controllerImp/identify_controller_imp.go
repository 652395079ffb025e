package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"plantscan/pkg/identify/service"
	"plantscan/pkg/logger"
)

type IdentifyCtrl struct{ s service.IdentifyService }

func New(s service.IdentifyService) *IdentifyCtrl { return &IdentifyCtrl{s: s} }

type identifyReq struct {
	Image string `json:"image"`
}

func (h *IdentifyCtrl) Identify(c echo.Context) error {
	var req identifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(req.Image) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image provided"})
	}

	rec, err := h.s.Identify(c.Request().Context(), req.Image)
	if err != nil {
		if errors.Is(err, service.ErrMissingImage) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image provided"})
		}
		logger.For("identify").
			WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			WithError(err).
			Error("identify failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to identify plant",
			"details": err.Error(),
		})
	}
	return c.JSONBlob(http.StatusOK, rec)
}
