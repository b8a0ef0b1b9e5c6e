package repo

import (
	"context"

	"gorm.io/gorm"

	"HealthKeeper/internal/model"
)

// RecordRepository — контракт доступа к Record. Все операции ограничены владельцем:
// запись другого пользователя неотличима от несуществующей.
type RecordRepository interface {
	// ListByUser возвращает записи пользователя в порядке вставки.
	ListByUser(ctx context.Context, userID int64) ([]model.Record, error)

	// Create вставляет запись и заполняет сгенерированные поля (ID, CreatedAt).
	Create(ctx context.Context, rec *model.Record) error

	// GetOwned возвращает запись по id+владельцу либо gorm.ErrRecordNotFound.
	GetOwned(ctx context.Context, userID, id int64) (*model.Record, error)

	// UpdateOwned обновляет title/data записи, принадлежащей userID.
	// Возвращает число затронутых строк: 0 означает "чужая или не существует".
	UpdateOwned(ctx context.Context, userID, id int64, title, data string) (int64, error)

	// DeleteOwned удаляет запись по id+владельцу. Отсутствие строки — не ошибка.
	DeleteOwned(ctx context.Context, userID, id int64) error
}

type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepository создаёт реализацию репозитория для Record.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) ListByUser(ctx context.Context, userID int64) ([]model.Record, error) {
	var recs []model.Record
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return recs, nil
}

func (r *recordRepo) Create(ctx context.Context, rec *model.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo) GetOwned(ctx context.Context, userID, id int64) (*model.Record, error) {
	var rec model.Record
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rec, nil
}

func (r *recordRepo) UpdateOwned(ctx context.Context, userID, id int64, title, data string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"title": title, "data": data})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *recordRepo) DeleteOwned(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Record{}).Error
}
