package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"HealthKeeper/internal/config"
	"HealthKeeper/internal/handlers"
	"HealthKeeper/internal/middleware"
	"HealthKeeper/internal/mlclient"
	"HealthKeeper/internal/repo"
	"HealthKeeper/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// Секрет подписи обязателен: молчаливый дефолт — известный всем ключ,
	// поэтому без явного значения сервер не стартует.
	if cfg.AuthSecret == "" {
		sugar.Fatalw("AUTH_SECRET is required, refusing to start with an empty signing secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	if cfg.SeedDemo {
		if err := repo.SeedDemoData(ctx, gormDB); err != nil {
			sugar.Fatalw("failed to seed demo data", "error", err)
		}
		sugar.Infow("demo data seeded")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		sugar.Fatalw("failed to get sql.DB", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	recordRepo := repo.NewRecordRepository(gormDB)
	uploadRepo := repo.NewUploadRepository(gormDB)

	userService := service.NewUserService(userRepo)
	recordService := service.NewRecordService(recordRepo)
	uploadService := service.NewUploadService(uploadRepo, mlclient.New(cfg.MLServiceURL), cfg.UploadDir, sugar)

	h := handlers.NewHandler(userService, recordService, uploadService, sqlDB, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", cfg.DatabaseDSN,
		"MLServiceURL", cfg.MLServiceURL,
		"UploadDir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
