package repo

import (
	"errors"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"HealthKeeper/internal/model"
)

// InitDB открывает соединение с БД и прогоняет автомиграции.
// Движок выбирается по DSN: postgres-строка подключения или путь к файлу SQLite.
// Оба бэкенда отдают один и тот же *gorm.DB, дальше код их не различает.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "healthkeeper.db"
	}

	var dial gorm.Dialector
	if isPostgresDSN(dsn) {
		dial = gormpostgres.Open(dsn)
	} else {
		// modernc.org/sqlite — драйвер без CGO, подключаем через DriverName
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Record{}, &model.Upload{}); err != nil {
		return nil, err
	}

	return db, nil
}

// isDuplicatedKey дополняет перевод ошибок gorm: драйвер modernc отдаёт
// нарушение уникальности текстом, без кода, который умеет переводить диалектор.
func isDuplicatedKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
