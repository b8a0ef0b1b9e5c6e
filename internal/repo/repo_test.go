package repo

import (
	"fmt"
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"HealthKeeper/internal/model"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// Имя БД привязано к тесту, чтобы тесты не делили состояние.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Record{}, &model.Upload{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
