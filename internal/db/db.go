package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/registry-ingest/internal/domain/registry"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects and parametrizes the persistence target.
type Config struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
}

// Open connects to the configured store and migrates the registry schema.
// The caller owns the handle for the lifetime of the batch.
func Open(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	dbLog := log.With("component", "db")

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		dialector = postgres.Open(dsn)
	case DriverSQLite, "":
		path := cfg.SQLitePath
		if path == "" {
			path = "registry.sqlite"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	dbLog.Info("connecting", "driver", cfg.Driver)
	handle, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := handle.AutoMigrate(
		&registry.FileRecord{},
		&registry.MainRecord{},
		&registry.RightRecord{},
		&registry.RestrictRecord{},
		&registry.DealRecord{},
		&registry.DealParty{},
	); err != nil {
		return nil, fmt.Errorf("migrate registry schema: %w", err)
	}
	dbLog.Info("schema ready")

	return handle, nil
}

// Close releases the underlying connection pool.
func Close(handle *gorm.DB) error {
	sqlDB, err := handle.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
