package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"attendance/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	LocationFeedMemory = "memory"
	LocationFeedRedis  = "redis"
)

type Config struct {
	HTTPPort   string `mapstructure:"http_port"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`
	DBMaxConns int    `mapstructure:"db_max_conns"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	GeofencePollInterval  time.Duration `mapstructure:"geofence_poll_interval"`
	GeofenceHistoryLimit  int           `mapstructure:"geofence_history_limit"`
	GeofenceMissThreshold int           `mapstructure:"geofence_miss_threshold"`

	LocationFeed   string        `mapstructure:"location_feed"`
	LocationMaxAge time.Duration `mapstructure:"location_max_age"`
	RedisAddr      string        `mapstructure:"redis_addr"`
	RedisPassword  string        `mapstructure:"redis_password"`
	RedisDB        int           `mapstructure:"redis_db"`

	InvoiceServiceURL string        `mapstructure:"invoice_service_url"`
	InvoiceTimeout    time.Duration `mapstructure:"invoice_timeout"`
	InvoiceRetryMax   int           `mapstructure:"invoice_retry_max"`

	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EventOrigins   []string `mapstructure:"event_origins"`
}

// LoadConfig reads configuration with the precedence environment, .env file,
// configFile, defaults. An empty configFile looks for an optional
// attendance.yaml in the working directory.
func LoadConfig(configFile string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("attendance")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", "8082")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "attendance")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_conns", 25)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("geofence_poll_interval", "10s")
	v.SetDefault("geofence_history_limit", 200)
	v.SetDefault("geofence_miss_threshold", 6)

	v.SetDefault("location_feed", LocationFeedMemory)
	v.SetDefault("location_max_age", "2m")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("invoice_service_url", "http://localhost:8090")
	v.SetDefault("invoice_timeout", "10s")
	v.SetDefault("invoice_retry_max", 4)

	v.SetDefault("rate_limit_rps", 1.0)
	v.SetDefault("rate_limit_burst", 5)
	v.SetDefault("event_origins", []string{})
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("http_port"))
	}
	if c.DBHost == "" {
		problems = append(problems, errs.NewValueIsRequiredError("db_host"))
	}
	if c.DBName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("db_name"))
	}
	if c.GeofencePollInterval < time.Second {
		problems = append(problems, errs.NewValueIsOutOfRangeError("geofence_poll_interval", c.GeofencePollInterval, time.Second, "unbounded"))
	}
	if c.GeofenceHistoryLimit < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("geofence_history_limit", c.GeofenceHistoryLimit, 1, "unbounded"))
	}
	if c.GeofenceMissThreshold < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("geofence_miss_threshold", c.GeofenceMissThreshold, 1, "unbounded"))
	}
	switch c.LocationFeed {
	case LocationFeedMemory:
	case LocationFeedRedis:
		if c.RedisAddr == "" {
			problems = append(problems, errs.NewValueIsRequiredError("redis_addr"))
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidError("location_feed"))
	}
	if c.InvoiceServiceURL == "" {
		problems = append(problems, errs.NewValueIsRequiredError("invoice_service_url"))
	}

	return errors.Join(problems...)
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
