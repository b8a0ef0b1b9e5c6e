package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL — фиксированное окно жизни токена: сутки с момента выпуска.
// Механизмов refresh и отзыва нет: токен либо валиден, либо истёк.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims — стандартные утверждения плюс идентификатор и email пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
}

// BuildJWT выпускает подписанный HS256 токен с заданным временем жизни.
func BuildJWT(userID int64, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return token.SignedString([]byte(secret))
}

// IssueToken выпускает токен со стандартным TTL (для логина/регистрации).
func IssueToken(userID int64, email, secret string) (string, error) {
	return BuildJWT(userID, email, secret, TokenTTL)
}

// GetClaims проверяет подпись и срок действия токена и возвращает утверждения.
// Просроченный токен и неверная подпись неразличимы для вызывающего: обе ошибки —
// повод ответить 403.
func GetClaims(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
