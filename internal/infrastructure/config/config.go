package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config stores all configuration of the application
type Config struct {
	// Environment type: LOCAL or SERVER
	EnvType string

	// Database
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPath          string // sqlite file or ":memory:"
	DBMigrationMode string // "auto" (default) or "drop"
	DBMaxIdleConns  int
	DBMaxOpenConns  int
	DBLogSQL        bool

	// Server
	ServerPort         string
	GinMode            string
	CORSAllowedOrigins []string

	// Redis, used for shared rate-limit counters
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Rate limiting on /api
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	// Logging
	LogDir string
}

// LoadConfig loads config from environment variables based on ENV_TYPE.
// Prefixed keys (LOCAL_DB_HOST, SERVER_DB_HOST) win over plain ones.
func LoadConfig() *Config {
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))
	if envType != "LOCAL" && envType != "SERVER" {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		envType = "LOCAL"
	}
	prefix := envType + "_"

	env := func(key, defaultValue string) string {
		return getEnv(prefix+key, getEnv(key, defaultValue))
	}

	driver := strings.ToLower(env("DB_DRIVER", DriverSQLite))

	return &Config{
		EnvType: envType,

		DBDriver:        driver,
		DBHost:          env("DB_HOST", "localhost"),
		DBPort:          env("DB_PORT", defaultPort(driver)),
		DBUser:          env("DB_USER", ""),
		DBPassword:      env("DB_PASSWORD", ""),
		DBName:          env("DB_NAME", "propertyops"),
		DBPath:          env("DB_PATH", "propertyops.db"),
		DBMigrationMode: strings.ToLower(env("DB_MIGRATION_MODE", "auto")),
		DBMaxIdleConns:  getEnvAsInt(prefix+"DB_MAX_IDLE_CONNS", getEnvAsInt("DB_MAX_IDLE_CONNS", 10)),
		DBMaxOpenConns:  getEnvAsInt(prefix+"DB_MAX_OPEN_CONNS", getEnvAsInt("DB_MAX_OPEN_CONNS", 100)),
		DBLogSQL:        getEnvAsBool("DB_LOG_SQL", false),

		ServerPort:         env("SERVER_PORT", "3000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),

		RedisEnabled:  getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:     env("REDIS_HOST", "localhost"),
		RedisPort:     env("REDIS_PORT", "6379"),
		RedisPassword: env("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		RateLimitEnabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 40),

		LogDir: getEnv("LOG_DIR", "logs"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("DB_PATH is required for sqlite"))
		}
	case DriverMySQL, DriverPostgres:
		for key, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				errs = append(errs, fmt.Errorf("%s is required for %s", key, c.DBDriver))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver))
	}

	if c.DBMigrationMode != "auto" && c.DBMigrationMode != "drop" {
		errs = append(errs, fmt.Errorf("unsupported DB_MIGRATION_MODE %q", c.DBMigrationMode))
	}
	if c.ServerPort == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	return errors.Join(errs...)
}

// GetDSN returns the database connection string for the configured driver
func (c *Config) GetDSN() string {
	switch c.DBDriver {
	case DriverMySQL:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName +
			"?charset=utf8mb4&parseTime=True&loc=Local"
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	default:
		if c.DBPath == ":memory:" {
			return c.DBPath
		}
		return filepath.Clean(c.DBPath)
	}
}

// IsInMemory reports whether the database lives only in process memory.
func (c *Config) IsInMemory() bool {
	return c.DBDriver == DriverSQLite && strings.Contains(c.DBPath, ":memory:")
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func defaultPort(driver string) string {
	switch driver {
	case DriverMySQL:
		return "3306"
	case DriverPostgres:
		return "5432"
	default:
		return ""
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
