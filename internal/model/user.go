package model

import "time"

// User — учётная запись. Email уникален и после создания не меняется.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
