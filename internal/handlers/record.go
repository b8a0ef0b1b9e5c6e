package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"HealthKeeper/internal/middleware"
	"HealthKeeper/internal/model"
	"HealthKeeper/internal/service"
)

// RecordHandler обрабатывает CRUD по записям и дашборд.
type RecordHandler struct {
	RecordService *service.RecordService
	UserService   *service.UserService
	Logger        *zap.SugaredLogger
}

func NewRecordHandler(recordService *service.RecordService, userService *service.UserService, logger *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{RecordService: recordService, UserService: userService, Logger: logger}
}

type recordRequest struct {
	Title string          `json:"title"`
	Data  json.RawMessage `json:"data"`
}

type recordDTO struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// toRecordDTO отдаёт data как сырой JSON — точно те байты, что были сохранены.
func toRecordDTO(rec model.Record) recordDTO {
	data := rec.Data
	if data == "" {
		data = "{}"
	}
	return recordDTO{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Title:     rec.Title,
		Data:      json.RawMessage(data),
		CreatedAt: rec.CreatedAt,
	}
}

func toRecordDTOs(recs []model.Record) []recordDTO {
	out := make([]recordDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordDTO(rec))
	}
	return out
}

// Dashboard отдаёт профиль пользователя вместе с его записями.
func (h *RecordHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Dashboard: failed to load user", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	records, err := h.RecordService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Dashboard: failed to list records", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    userDTO{ID: user.ID, Email: user.Email, Name: user.Name},
		"records": toRecordDTOs(records),
	})
}

// List отдаёт записи пользователя в порядке создания.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	records, err := h.RecordService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toRecordDTOs(records))
}

// Create сохраняет новую запись и возвращает её с id и временем создания.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	rec, err := h.RecordService.Create(r.Context(), userID, req.Title, req.Data)
	if err != nil {
		h.Logger.Errorw("Create: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toRecordDTO(*rec))
}

// Update изменяет запись владельца. Чужой или несуществующий id — 404.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	id, err := recordID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	rec, err := h.RecordService.Update(r.Context(), userID, id, req.Title, req.Data)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}
		h.Logger.Errorw("Update: service error", "user_id", userID, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toRecordDTO(*rec))
}

// Delete удаляет запись владельца. Идемпотентно: успех и при отсутствии строки.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	id, err := recordID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.RecordService.Delete(r.Context(), userID, id); err != nil {
		h.Logger.Errorw("Delete: service error", "user_id", userID, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func recordID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
