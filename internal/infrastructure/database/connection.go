package database

import (
	"fmt"
	"net/url"
	"time"

	"medcare-admin/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// NewConnection opens a gorm connection for the configured driver. Timestamps
// are read and written in loc so appointment days match the dashboard's calendar.
func NewConnection(cfg config.DBConfig, loc *time.Location, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg, loc)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().In(loc)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Infof("Successfully connected to %s database", cfg.Driver)

	return db, nil
}

func dialectorFor(cfg config.DBConfig, loc *time.Location) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return postgres.Open(PostgresDSN(cfg, loc)), nil
	case DriverMySQL:
		return mysql.Open(MySQLDSN(cfg, loc)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func PostgresDSN(cfg config.DBConfig, loc *time.Location) string {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)
	if name := zoneName(loc); name != "" {
		dsn += " TimeZone=" + name
	}
	return dsn
}

func MySQLDSN(cfg config.DBConfig, loc *time.Location) string {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)
	if name := zoneName(loc); name != "" {
		dsn += "&loc=" + url.QueryEscape(name)
	} else {
		dsn += "&loc=Local"
	}
	return dsn
}

// zoneName returns an IANA name the database understands, or "" for the
// process-local zone which has no portable name.
func zoneName(loc *time.Location) string {
	if loc == nil || loc == time.Local || loc.String() == "Local" {
		return ""
	}
	return loc.String()
}

func gormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
