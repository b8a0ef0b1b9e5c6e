package repo

import (
	"context"

	"gorm.io/gorm"

	"HealthKeeper/internal/model"
)

// UploadRepository — контракт доступа к Upload (только вставка и выборка).
type UploadRepository interface {
	// Create вставляет строку загрузки и заполняет сгенерированные поля.
	Create(ctx context.Context, up *model.Upload) error

	// ListByUser возвращает загрузки пользователя в порядке вставки.
	ListByUser(ctx context.Context, userID int64) ([]model.Upload, error)
}

type uploadRepo struct {
	db *gorm.DB
}

// NewUploadRepository создаёт реализацию репозитория для Upload.
func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) Create(ctx context.Context, up *model.Upload) error {
	return r.db.WithContext(ctx).Create(up).Error
}

func (r *uploadRepo) ListByUser(ctx context.Context, userID int64) ([]model.Upload, error) {
	var ups []model.Upload
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ups)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ups, nil
}
