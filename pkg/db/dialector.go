package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"liyu1981.xyz/cattle-health-service/pkg/common"
)

const memoryDSNMarker = "mode=memory"

// UseSqliteDialector opens a file database. Foreign keys are switched on in
// the DSN so every pooled connection enforces them.
func UseSqliteDialector(path string) gorm.Dialector {
	if path == "" {
		path = "cattle.db"
	}
	return sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
}

// UseMemorySqliteDialector returns a fresh, uniquely named in-memory database,
// so handles opened by different tests never see each other's rows.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?%s&cache=shared&_foreign_keys=on", uuid.NewString(), memoryDSNMarker))
}

func UseMySQLDialector(cfg common.DBConfig) (gorm.Dialector, error) {
	dsn, err := BuildMySQLDSN(cfg)
	if err != nil {
		return nil, err
	}
	return mysql.Open(dsn), nil
}

func UsePostgresDialector(cfg common.DBConfig) (gorm.Dialector, error) {
	dsn, err := BuildPostgresDSN(cfg)
	if err != nil {
		return nil, err
	}
	return postgres.Open(dsn), nil
}

// DialectorFromConfig maps CATTLE_DB_TYPE to a dialector.
func DialectorFromConfig(cfg common.DBConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Type) {
	case "file", "":
		return UseSqliteDialector(cfg.Path), nil
	case "memory":
		return UseMemorySqliteDialector(), nil
	case "mysql":
		return UseMySQLDialector(cfg)
	case "postgres":
		return UsePostgresDialector(cfg)
	}
	return nil, fmt.Errorf("unknown %s: %s", common.EnvKeyDBType, cfg.Type)
}

func BuildMySQLDSN(cfg common.DBConfig) (string, error) {
	if cfg.User == "" || cfg.Name == "" {
		return "", errors.New("mysql configuration requires user and database name")
	}

	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port == 0 {
		port = 3306
	}

	user := cfg.User
	if cfg.Password != "" {
		user = fmt.Sprintf("%s:%s", cfg.User, cfg.Password)
	}

	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&loc=Local&parseTime=True", user, host, port, cfg.Name), nil
}

func BuildPostgresDSN(cfg common.DBConfig) (string, error) {
	if cfg.User == "" || cfg.Name == "" {
		return "", errors.New("postgres configuration requires user and database name")
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 || port == 3306 {
		port = 5432
	}

	params := []string{
		fmt.Sprintf("host=%s", host),
		fmt.Sprintf("port=%d", port),
		fmt.Sprintf("user=%s", cfg.User),
		fmt.Sprintf("dbname=%s", cfg.Name),
	}
	if cfg.Password != "" {
		params = append(params, fmt.Sprintf("password=%s", cfg.Password))
	}
	params = append(params, "sslmode=disable")

	return strings.Join(params, " "), nil
}

func isMemorySqlite(dialector gorm.Dialector) bool {
	d, ok := dialector.(*sqlite.Dialector)
	return ok && strings.Contains(d.DSN, memoryDSNMarker)
}
