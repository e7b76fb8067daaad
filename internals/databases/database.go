package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"classmanager_backend/internals/configs"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ConnectDB membuka koneksi sesuai DB_DRIVER lalu menjalankan migrasi.
func ConnectDB(cfg configs.Config, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=classmanager&options=-c statement_timeout=3000",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode,
		)
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
		log.WithField("host", cfg.DBHost).Info("connecting to PostgreSQL")
	case DriverSQLite, "":
		if dir := filepath.Dir(cfg.DBPath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		dialector = sqlite.Open(sqliteDSN(cfg.DBPath))
		log.WithField("path", cfg.DBPath).Info("connecting to SQLite")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.DBDriver != DriverPostgres {
		// satu writer untuk file SQLite
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	} else {
		TunePool(db, log)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("DB connected")
	return db, nil
}

// OpenMemory membuka SQLite in-memory yang sudah dimigrasi (dipakai test).
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(":memory:")), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// in-memory DB hilang per koneksi, jadi pool dibatasi satu
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func TunePool(db *gorm.DB, log *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Warn("pool tune failed")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
