package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger — проверка доступности хранилища (обычно *sql.DB из gorm).
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	Pinger Pinger
	Logger *zap.SugaredLogger
}

func NewHealthHandler(p Pinger, logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{Pinger: p, Logger: logger}
}

// Health проверяет соединение с БД и отдаёт статус сервиса.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Pinger == nil || h.Pinger.PingContext(r.Context()) != nil {
		h.Logger.Errorw("health: database ping failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":   "ERROR",
			"database": "Disconnected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"database":  "Connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
