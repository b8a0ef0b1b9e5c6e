package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"HealthKeeper/internal/config"
	"HealthKeeper/internal/middleware"
	"HealthKeeper/internal/service"
)

// UploadHandler принимает multipart-загрузку и отдаёт результат предсказания.
type UploadHandler struct {
	UploadService *service.UploadService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

func NewUploadHandler(uploadService *service.UploadService, logger *zap.SugaredLogger, cfg *config.Config) *UploadHandler {
	return &UploadHandler{UploadService: uploadService, Logger: logger, Config: cfg}
}

// Upload сохраняет файл из поля "file" и опциональный metadata (JSON-строка).
// Ответ всегда содержит блок ml: настоящий или подменный, если ML-сервис недоступен.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	// Лимит общего тела запроса
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Upload: missing file", "error", err)
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	metadata := r.FormValue("metadata")
	if metadata != "" && !json.Valid([]byte(metadata)) {
		writeError(w, http.StatusBadRequest, "invalid metadata")
		return
	}

	declaredType := header.Header.Get("Content-Type")

	res, err := h.UploadService.Accept(r.Context(), userID, file, declaredType, metadata)
	if err != nil {
		h.Logger.Errorw("Upload: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "File uploaded",
		"ml":      res.ML,
	})
}
