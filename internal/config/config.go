package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN     string `env:"DATABASE_URI"`
	AuthSecret      string `env:"AUTH_SECRET"`
	MLServiceURL    string `env:"ML_SERVICE_URL"`
	UploadDir       string `env:"UPLOAD_DIR"`
	UploadMaxSizeMB int    `env:"UPLOAD_MAX_MB"`
	SeedDemo        bool   `env:"SEED_DEMO"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (файл SQLite или postgres DSN)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT (обязателен)")
	flag.StringVar(&cfg.MLServiceURL, "ml-url", cfg.MLServiceURL, "базовый URL ML-сервиса предсказаний")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог для загруженных файлов")
	flag.IntVar(&cfg.UploadMaxSizeMB, "upload-max-mb", cfg.UploadMaxSizeMB, "максимальный размер загружаемого файла, МБ")
	flag.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "создать демо-пользователя и демо-записи при старте")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the HealthKeeper server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults. AuthSecret намеренно БЕЗ дефолта: сервер обязан упасть на старте,
	// если секрет не задан явно (проверка в main).
	if cfg.MLServiceURL == "" {
		cfg.MLServiceURL = "http://localhost:8000"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.UploadMaxSizeMB <= 0 {
		cfg.UploadMaxSizeMB = 50
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.TokenFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.TokenFile = filepath.Join(dir, "HealthKeeper", "auth_token")
		}
	}

	return cfg
}
