package service

import (
	"context"
	"encoding/json"
	"errors"

	"HealthKeeper/internal/model"
	"HealthKeeper/internal/repo"
)

// ErrRecordNotFound — запись не существует или принадлежит другому пользователю.
// Снаружи эти случаи неразличимы.
var ErrRecordNotFound = errors.New("record not found")

// RecordService инкапсулирует операции над записями пользователя.
type RecordService struct {
	repo repo.RecordRepository
}

func NewRecordService(r repo.RecordRepository) *RecordService {
	return &RecordService{repo: r}
}

// List возвращает записи пользователя в порядке создания.
func (s *RecordService) List(ctx context.Context, userID int64) ([]model.Record, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create сохраняет запись и возвращает её с заполненными id и временем создания.
// data хранится как JSON-текст и проходит через create/read без изменений.
func (s *RecordService) Create(ctx context.Context, userID int64, title string, data json.RawMessage) (*model.Record, error) {
	rec := &model.Record{
		UserID: userID,
		Title:  title,
		Data:   rawToString(data),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update изменяет запись владельца. Ноль затронутых строк — ErrRecordNotFound:
// чужой или несуществующий id ведут себя одинаково.
func (s *RecordService) Update(ctx context.Context, userID, id int64, title string, data json.RawMessage) (*model.Record, error) {
	rows, err := s.repo.UpdateOwned(ctx, userID, id, title, rawToString(data))
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetOwned(ctx, userID, id)
}

// Delete удаляет запись владельца. Идемпотентно: отсутствие строки — не ошибка.
func (s *RecordService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteOwned(ctx, userID, id)
}

func rawToString(data json.RawMessage) string {
	if len(data) == 0 {
		return "{}"
	}
	return string(data)
}
