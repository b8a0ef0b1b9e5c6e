package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"HealthKeeper/internal/config"
	"HealthKeeper/internal/middleware"
	"HealthKeeper/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	recordService *service.RecordService,
	uploadService *service.UploadService,
	pinger Pinger,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	healthHandler := NewHealthHandler(pinger, logger)
	userHandler := NewUserHandler(userService, logger, config)
	recordHandler := NewRecordHandler(recordService, userService, logger)
	uploadHandler := NewUploadHandler(uploadService, logger, config)

	// Open routes
	r.Get("/api/health", healthHandler.Health)
	r.Post("/api/signup", userHandler.Signup)
	r.Post("/api/login", userHandler.Login)

	// Protected routes: Bearer-токен обязателен
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(config.AuthSecret))

		r.Get("/api/dashboard", recordHandler.Dashboard)
		r.Get("/api/records", recordHandler.List)
		r.Post("/api/records", recordHandler.Create)
		r.Put("/api/records/{id}", recordHandler.Update)
		r.Delete("/api/records/{id}", recordHandler.Delete)
		r.Post("/api/upload", uploadHandler.Upload)
	})

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт ошибку в форме {"error": "<msg>"}. Внутренние детали
// (SQL, стектрейсы) наружу не выходят — только безопасное сообщение.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
