package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const devJWTSecret = "classmanager-dev-secret"

// Config adalah konfigurasi proses yang dibaca dari ENV.
type Config struct {
	Port string

	DBDriver   string // sqlite | postgres
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins     string
	LogLevel        string
	EnableRateLimit bool
	RequestTimeout  time.Duration

	SeedUsersFile string // kosong = tidak seed
}

// =======================
// ENV LOADER
// =======================
func LoadEnv(log *logrus.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment")
	} else {
		log.Info(".env file loaded")
	}
}

// Load membaca Config dari ENV.
func Load(log *logrus.Logger) Config {
	cfg := Config{
		Port:            GetEnv("PORT", "5000"),
		DBDriver:        strings.ToLower(GetEnv("DB_DRIVER", "sqlite")),
		DBPath:          GetEnv("DB_PATH", "./db/database.sqlite"),
		DBHost:          GetEnv("DB_HOST", "localhost"),
		DBPort:          GetEnv("DB_PORT", "5432"),
		DBUser:          GetEnv("DB_USER", "postgres"),
		DBPassword:      GetEnv("DB_PASSWORD"),
		DBName:          GetEnv("DB_NAME", "classmanager"),
		DBSSLMode:       GetEnv("DB_SSLMODE", "disable"),
		JWTSecret:       strings.TrimSpace(GetEnv("JWT_SECRET")),
		JWTTTL:          getDuration("JWT_TTL", 24*time.Hour),
		CORSOrigins:     GetEnv("CORS_ORIGINS", "*"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		EnableRateLimit: getBool("RATE_LIMIT_ENABLED", true),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 5*time.Second),
		SeedUsersFile:   GetEnv("SEED_USERS_FILE"),
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, falling back to the development secret")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
