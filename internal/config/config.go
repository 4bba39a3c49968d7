package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int/bool conversion
	"strings" // For list parsing
	"time"    // For token TTL

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort     string // Application port
	IsProd      bool   // Is production environment
	LogLevel    string // logrus level name
	DBDriver    string // mysql, postgres or sqlite
	DBUser      string // Database user
	DBPassword  string // Database password
	DBHost      string // Database host
	DBPort      string // Database port
	DBName      string // Database name
	DBPath      string // SQLite file path (":memory:" allowed)
	AutoMigrate bool   // Run AutoMigrate on server start

	JWTSecret string        // JWT secret key
	TokenTTL  time.Duration // Access token lifetime

	AuthUsername     string // Username of the single login record
	AuthFullName     string // Display name of the login record
	AuthEmail        string // Email of the login record
	AuthPasswordHash string // bcrypt hash of the login password
	AuthPassword     string // Plaintext password, hashed at boot when no hash is given

	RedisAddr   string // Redis server address, empty disables the event stream
	RedisPass   string // Redis password
	RedisDB     int    // Redis database number
	EventStream string // Redis stream receiving entity change events

	CORSOrigins []string // Allowed CORS origins
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:     get("APP_PORT", "8080"),
		IsProd:      getBool("IS_PROD", false),
		LogLevel:    get("LOG_LEVEL", "info"),
		DBDriver:    strings.ToLower(get("DB_DRIVER", DriverMySQL)),
		DBUser:      get("DB_USER", "root"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      get("DB_HOST", "localhost"),
		DBPort:      os.Getenv("DB_PORT"),
		DBName:      get("DB_NAME", "digitalwallet_db"),
		DBPath:      get("DB_PATH", "digitalwallet.db"),
		AutoMigrate: getBool("AUTO_MIGRATE", true),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getDuration("TOKEN_TTL", 30*time.Minute),

		AuthUsername:     get("AUTH_USERNAME", "johndoe"),
		AuthFullName:     get("AUTH_FULL_NAME", "John Doe"),
		AuthEmail:        get("AUTH_EMAIL", "johndoe@example.com"),
		AuthPasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
		AuthPassword:     os.Getenv("AUTH_PASSWORD"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     getInt("REDIS_DB", 0),
		EventStream: get("EVENT_STREAM", "digitalwallet:events"),

		CORSOrigins: getList("CORS_ORIGINS", []string{"*"}),
	}
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.AuthPasswordHash == "" && c.AuthPassword == "" {
		return fmt.Errorf("one of AUTH_PASSWORD_HASH or AUTH_PASSWORD is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, port, c.DBUser, c.DBPassword, c.DBName)
	case DriverSQLite:
		return c.DBPath
	default:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
