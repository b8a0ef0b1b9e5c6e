package repo

import (
	"context"

	"gorm.io/gorm"

	"HealthKeeper/internal/model"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser вставляет пользователя. Нарушение уникальности email
	// возвращается как gorm.ErrDuplicatedKey.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает пользователя либо gorm.ErrRecordNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID возвращает пользователя либо gorm.ErrRecordNotFound.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicatedKey(err) {
			return nil, gorm.ErrDuplicatedKey
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
