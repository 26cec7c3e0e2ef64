package db

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

// DB is the database handle shared by the core services. It is built once by
// the caller and passed down, never looked up globally.
type DB struct {
	Conn *gorm.DB
}

// AllModels lists tables in dependency order for migration.
var AllModels = []any{
	&models.User{},
	&models.Cow{},
	&models.TemperatureReading{},
	&models.ActivityReading{},
	&models.Notification{},
}

// Open connects and applies dialect specific settings. It does not migrate.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameDatabase)

	logLevel := gormlogger.Warn
	if common.IsTestEnv() {
		logLevel = gormlogger.Silent
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if dialector.Name() == "sqlite" {
		if err := configureSqlite(conn, dialector); err != nil {
			return nil, err
		}
	}

	return &DB{Conn: conn}, nil
}

// OpenAndMigrate is what the server and most tests want.
func OpenAndMigrate(dialector gorm.Dialector) (*DB, error) {
	instance, err := Open(dialector)
	if err != nil {
		return nil, err
	}
	if err := instance.Migrate(); err != nil {
		_ = instance.Close()
		return nil, err
	}
	return instance, nil
}

func (d *DB) Migrate() error {
	if d == nil || d.Conn == nil {
		return errors.New("nil database handle")
	}
	if err := d.Conn.AutoMigrate(AllModels...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	common.GetLoggerWith(common.LoggerNameDatabase).Info("Database migration completed")
	return nil
}

func (d *DB) Close() error {
	if d == nil || d.Conn == nil {
		return nil
	}
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping is used by the health check.
func (d *DB) Ping() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func configureSqlite(conn *gorm.DB, dialector gorm.Dialector) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	if isMemorySqlite(dialector) {
		// every pooled connection to a named memory database must stay on one
		// connection or writes from one will lock the others out
		sqlDB.SetMaxOpenConns(1)
	} else if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return fmt.Errorf("set sqlite journal mode: %w", err)
	}

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("enable sqlite foreign key support: %w", err)
	}
	return nil
}
