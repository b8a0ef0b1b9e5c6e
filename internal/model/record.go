package model

import "time"

// Record — запись о здоровье, принадлежащая ровно одному пользователю.
// Data хранится как сериализованный JSON-текст без ограничений на форму.
type Record struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title string `gorm:"not null"`
	Data  string `gorm:"not null;default:'{}'"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
