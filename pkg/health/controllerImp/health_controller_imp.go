package controllerImp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	model string
}

// NewHealthCtrl takes the identification model's name, e.g. "gemini:gemini-1.5-flash" or "mock".
func NewHealthCtrl(db *gorm.DB, model string) *HealthCtrl {
	return &HealthCtrl{db: db, model: model}
}

type sub struct {
	OK   bool   `json:"ok"`
	Err  string `json:"err,omitempty"`
	Mode string `json:"mode,omitempty"`
	Name string `json:"name,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	} else {
		db = sub{Err: "gorm db is nil"}
	}

	model := sub{OK: h.model != "", Name: h.model, Mode: "live"}
	if h.model == "mock" || h.model == "" {
		model.Mode = "mock"
	}
	if strings.HasPrefix(h.model, "gemini:") {
		model.Mode = "gemini"
	}

	// readiness depends on the database only; the mock model always answers
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"model":    model,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
