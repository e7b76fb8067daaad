package configs

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// NewLogger membuat logger JSON untuk seluruh aplikasi.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	Log           *logrus.Logger
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(log *logrus.Logger) gormLogger.Interface {
	level := gormLogger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = gormLogger.Info
	}
	return &GormLogger{
		Log:           log,
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.Log.Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.Log.Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.Log.Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := logrus.Fields{
		"file":    utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		l.Log.WithFields(fields).WithError(err).Error("query failed")
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.Log.WithFields(fields).Warn("slow query")
	case l.LogLevel >= gormLogger.Info:
		l.Log.WithFields(fields).Debug("query")
	}
}
