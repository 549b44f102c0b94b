package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"starwars-api/logging"
)

// Options selects the store. DatabaseURL wins; SQLitePath is the file-backed fallback.
type Options struct {
	DatabaseURL string
	SQLitePath  string
	LogLevel    logger.LogLevel
}

// Connect opens the store without migrating it.
func Connect(opts Options) (Database, error) {
	dialector, desc := dialectorFor(opts)

	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	gormLogger := logger.New(logging.Logger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, fmt.Errorf("failed to register tracing plugin: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if opts.DatabaseURL == "" {
		// sqlite serializes writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	logging.Logger().Infof("database connection established (%s)", desc)

	return &GormDatabase{DB: db}, nil
}

func dialectorFor(opts Options) (gorm.Dialector, string) {
	if opts.DatabaseURL != "" {
		return postgres.Open(normalizePostgresURL(opts.DatabaseURL)), "postgres"
	}
	path := opts.SQLitePath
	if path == "" {
		path = "/tmp/test.db"
	}
	// foreign keys are off by default in sqlite
	dsn := path + "?_foreign_keys=on"
	return sqlite.Open(dsn), "sqlite " + path
}

// normalizePostgresURL accepts the legacy postgres:// scheme some hosts hand out.
func normalizePostgresURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}
