package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Data sources the repositories can be backed by.
const (
	DataSourceMemory   = "memory"
	DataSourceDatabase = "database"
)

type Config struct {
	App      AppConfig
	Schedule ScheduleConfig
	DB       DBConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Port             string
	Env              string
	LogLevel         string
	DataSource       string
	Location         *time.Location
	PatientsPageSize int
	AllowedOrigins   []string
}

type ScheduleConfig struct {
	SlotPolicy string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// IsDev reports whether the service runs in a development environment.
func (c *Config) IsDev() bool {
	return c.App.Env == "" || c.App.Env == "development"
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_SOURCE", DataSourceMemory)
	v.SetDefault("PATIENTS_PAGE_SIZE", 7)
	v.SetDefault("SCHEDULE_SLOT_POLICY", "token")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "30s")

	// The .env file is optional; environment variables alone are enough.
	_ = v.ReadInConfig()

	location, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	cacheTTL, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 30 * time.Second
	}

	dataSource := strings.ToLower(v.GetString("DATA_SOURCE"))
	if dataSource != DataSourceMemory && dataSource != DataSourceDatabase {
		return nil, fmt.Errorf("invalid DATA_SOURCE %q, use %q or %q", dataSource, DataSourceMemory, DataSourceDatabase)
	}

	pageSize := v.GetInt("PATIENTS_PAGE_SIZE")
	if pageSize < 1 {
		return nil, fmt.Errorf("PATIENTS_PAGE_SIZE must be positive, got %d", pageSize)
	}

	config := &Config{
		App: AppConfig{
			Port:             v.GetString("APP_PORT"),
			Env:              v.GetString("APP_ENV"),
			LogLevel:         v.GetString("LOG_LEVEL"),
			DataSource:       dataSource,
			Location:         location,
			PatientsPageSize: pageSize,
			AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Schedule: ScheduleConfig{
			SlotPolicy: v.GetString("SCHEDULE_SLOT_POLICY"),
		},
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      cacheTTL,
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
