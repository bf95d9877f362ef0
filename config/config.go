package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the server reads from the environment.
type Config struct {
	Port          string
	DataPath      string // SQLite store file, one file per profile
	BackupDir     string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	QRAPIBaseURL  string
	TokenTTL      time.Duration
}

// Load reads .env (when present) and the environment. The admin
// credentials default to admin/admin on purpose: this is the demo
// storefront's hardcoded login, NOT a production credential check.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          "8080",
		DataPath:      "data/pharmacy.db",
		BackupDir:     "data/backup",
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: "admin",
		AdminPassword: "admin",
		QRAPIBaseURL:  "https://api.qrserver.com/v1/create-qr-code/",
		TokenTTL:      12 * time.Hour,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if path := os.Getenv("DATA_PATH"); path != "" {
		cfg.DataPath = path
	}
	if dir := os.Getenv("BACKUP_DIR"); dir != "" {
		cfg.BackupDir = dir
	}
	if user := os.Getenv("ADMIN_USERNAME"); user != "" {
		cfg.AdminUsername = user
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		cfg.AdminPassword = pass
	}
	if base := os.Getenv("QR_API_BASE_URL"); base != "" {
		cfg.QRAPIBaseURL = base
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}
