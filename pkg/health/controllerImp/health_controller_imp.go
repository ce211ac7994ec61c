package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db       *gorm.DB
	provider string
}

func NewHealthCtrl(db *gorm.DB, provider string) *HealthCtrl {
	return &HealthCtrl{db: db, provider: provider}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type report struct {
	OK          bool             `json:"ok"`
	UptimeSec   int              `json:"uptimeSec"`
	LLMProvider string           `json:"llmProvider"`
	Checks      map[string]check `json:"checks"`
	Time        string           `json:"time"`
}

// Health pings the database; a failed ping answers 503.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, report{
		OK:          db.OK,
		UptimeSec:   int(time.Since(appStart).Seconds()),
		LLMProvider: h.provider,
		Checks:      map[string]check{"database": db},
		Time:        time.Now().UTC().Format(time.RFC3339),
	})
}
