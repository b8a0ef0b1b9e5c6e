package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"HealthKeeper/internal/model"
	"HealthKeeper/internal/repo"
)

// bcryptCost — фиксированный фактор стоимости хеширования паролей.
const bcryptCost = 10

var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Сообщение одно на оба случая, чтобы не раскрывать существование учётки.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService инкапсулирует регистрацию и проверку учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
// Занятый email — ErrEmailTaken, включая гонку на уникальном индексе.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет пару email/пароль и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID возвращает пользователя для блока user в дашборде.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
