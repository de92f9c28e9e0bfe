package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    string
	Env     string
	AppName string

	// PublicURL is prepended to media keys when building links for responses.
	PublicURL string

	// AdminEmail and AdminPassword seed the first administrator account.
	AdminEmail    string
	AdminPassword string
}

// DBConfig holds database configuration
type DBConfig struct {
	Driver          string // postgres | sqlite
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	SQLitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// GetDSN returns the PostgreSQL connection string
func (c *DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
}

// JWTConfig holds token settings
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Issuer          string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string
	Environment string
	ServiceName string
}

// StorageConfig selects and configures the media store backend
type StorageConfig struct {
	Driver    string // local | minio | gcs
	LocalRoot string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	GCSCredentialsFile string

	MaxUploadKB int
}

// RedisConfig holds cache connection settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ChartConfig holds revenue chart settings
type ChartConfig struct {
	Months          int
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	// Calendar is "jalali" or "gregorian"; Location is the IANA zone used for month boundaries.
	Calendar string
	Location string
}

// RefreshEnabled reports whether the background chart refresh should run.
// Without a cache there is nothing to warm.
func (c ChartConfig) RefreshEnabled() bool {
	return c.CacheTTL > 0 && c.RefreshInterval > 0
}

// Config holds all configuration
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	Storage StorageConfig
	Redis   RedisConfig
	Chart   ChartConfig
}

// Load reads configuration from the environment, after loading .env if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	env := getEnv("APP_ENV", "development")

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			Env:       env,
			AppName:   getEnv("APP_NAME", "Shop Admin API"),
			PublicURL: getEnv("PUBLIC_URL", "http://localhost:3000"),

			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			DSN:             os.Getenv("DATABASE_URL"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "shop_admin"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "Asia/Tehran"),
			SQLitePath:      getEnv("SQLITE_PATH", "database.db"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
			Issuer:          getEnv("JWT_ISSUER", "shop-admin-api"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: env,
			ServiceName: getEnv("SERVICE_NAME", "shop-admin-api"),
		},
		Storage: StorageConfig{
			Driver:             getEnv("STORAGE_DRIVER", "local"),
			LocalRoot:          getEnv("STORAGE_LOCAL_ROOT", "./storage"),
			MinioEndpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
			MinioAccessKey:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			MinioSecretKey:     getEnv("MINIO_SECRET_KEY", "minioadmin"),
			MinioUseSSL:        getEnvAsBool("MINIO_USE_SSL", false),
			Bucket:             getEnv("STORAGE_BUCKET", "shop-media"),
			GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
			MaxUploadKB:        getEnvAsInt("MAX_UPLOAD_KB", 1024),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Chart: ChartConfig{
			Months:          getEnvAsInt("CHART_MONTHS", 12),
			CacheTTL:        getEnvAsDuration("CHART_CACHE_TTL", 0),
			RefreshInterval: getEnvAsDuration("CHART_REFRESH_INTERVAL", 5*time.Minute),
			Calendar:        getEnv("CHART_CALENDAR", "jalali"),
			Location:        getEnv("CHART_LOCATION", "Asia/Tehran"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
