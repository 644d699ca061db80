package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTPPort int            // HTTPPort is the port the API server listens on.
	Postgres PostgresConfig // Postgres holds the database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host           string        // Host is the database server address.
	Port           string        // Port is the database server port.
	User           string        // User is the database user.
	Password       string        // Password is the database user's password.
	Dbname         string        // Dbname is the name of the database.
	PoolSize       int32         // PoolSize is the maximum number of pooled connections.
	AcquireTimeout time.Duration // AcquireTimeout bounds the wait for a free pooled connection.
}

// envBindings maps viper keys to the environment variables that provide them.
var envBindings = map[string]string{
	"env":                      "ENV",
	"http_port":                "HTTP_PORT",
	"postgres.host":            "DB_HOST",
	"postgres.port":            "DB_PORT",
	"postgres.user":            "DB_USER",
	"postgres.password":        "DB_PASSWORD",
	"postgres.db_name":         "DB_NAME",
	"postgres.pool_size":       "DB_POOL_SIZE",
	"postgres.acquire_timeout": "DB_ACQUIRE_TIMEOUT",
}

// MustLoad loads the configuration from the process environment and, if
// CONFIG_PATH is set, from a YAML file. Environment variables take precedence
// over file values. It panics on an unreadable file or an invalid timeout.
func MustLoad() *Config {
	vpr := viper.New()

	defPoolSize := 5
	defAcquireTimeout := 5 * time.Second
	defHTTPPort := 8080

	vpr.SetDefault("env", "local")
	vpr.SetDefault("http_port", defHTTPPort)
	vpr.SetDefault("postgres.host", "localhost")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("postgres.pool_size", defPoolSize)
	vpr.SetDefault("postgres.acquire_timeout", defAcquireTimeout)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}
		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	for key, envName := range envBindings {
		if err := vpr.BindEnv(key, envName); err != nil {
			panic("failed to bind env variable " + envName + ": " + err.Error())
		}
	}

	acquireTimeout := vpr.GetDuration("postgres.acquire_timeout")
	if acquireTimeout <= 0 {
		panic("failed to parse acquire timeout from configuration")
	}

	return &Config{
		Env:      vpr.GetString("env"),
		HTTPPort: vpr.GetInt("http_port"),
		Postgres: PostgresConfig{
			Host:           vpr.GetString("postgres.host"),
			Port:           vpr.GetString("postgres.port"),
			User:           vpr.GetString("postgres.user"),
			Password:       vpr.GetString("postgres.password"),
			Dbname:         vpr.GetString("postgres.db_name"),
			PoolSize:       vpr.GetInt32("postgres.pool_size"),
			AcquireTimeout: acquireTimeout,
		},
	}
}
