package database

import (
	"fmt"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"yemalin/internal/config"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// postgresDSN returns the PostgreSQL key/value connection string
func postgresDSN(c config.DBConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// dialector returns the GORM dialector for the configured driver.
func dialector(c config.DBConfig) (gorm.Dialector, error) {
	switch c.Driver {
	case DriverSQLite:
		return sqlite.Open(c.Path), nil
	case DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  postgresDSN(c),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		}), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.Driver, DriverSQLite, DriverPostgres)
	}
}

// MigrateURL returns the golang-migrate database URL for the configured driver.
func MigrateURL(c config.DBConfig) (string, error) {
	switch c.Driver {
	case DriverSQLite:
		return "sqlite3://" + c.Path, nil
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     c.Host + ":" + c.Port,
			Path:     "/" + c.Name,
			RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.Driver, DriverSQLite, DriverPostgres)
	}
}
