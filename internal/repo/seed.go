package repo

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"HealthKeeper/internal/model"
)

const (
	demoEmail    = "demo@demo.com"
	demoPassword = "demo123"
	demoName     = "Demo User"

	// та же стоимость, что и при регистрации через сервис
	bcryptCost = 10
)

// SeedDemoData создаёт демо-пользователя и несколько демо-записей,
// если их ещё нет. Повторный запуск ничего не меняет.
func SeedDemoData(ctx context.Context, db *gorm.DB) error {
	var user model.User
	err := db.WithContext(ctx).Where("email = ?", demoEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, herr := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
		if herr != nil {
			return herr
		}
		user = model.User{Email: demoEmail, PasswordHash: string(hash), Name: demoName}
		if cerr := db.WithContext(ctx).Create(&user).Error; cerr != nil {
			return cerr
		}
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&model.Record{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records := []model.Record{
		{UserID: user.ID, Title: "Sample Health Record", Data: `{"value": 42, "note": "Daily step count measurement."}`},
		{UserID: user.ID, Title: "Weekly Progress", Data: `{"value": 85, "note": "Fitness goal achievement percentage."}`},
		{UserID: user.ID, Title: "Monthly Summary", Data: `{"value": 67, "note": "Overall wellness score this month."}`},
	}
	return db.WithContext(ctx).Create(&records).Error
}
