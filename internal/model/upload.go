package model

import "time"

// Upload — загруженный файл. Только добавление: путей update/delete нет.
type Upload struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	UserID int64 `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Filename string `gorm:"not null"` // сгенерированное имя в каталоге загрузок
	Filetype string
	Metadata string `gorm:"not null;default:'{}'"`

	UploadedAt time.Time `gorm:"autoCreateTime"`
}
