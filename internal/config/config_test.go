package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IS_PROD", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := LoadConfig()
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, ":memory:", cfg.DSN())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.AutoMigrate)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "w"}
	assert.Equal(t, "u:p@tcp(db:3306)/w?parseTime=true", cfg.DSN())

	cfg.DBDriver = DriverPostgres
	cfg.DBPort = "6543"
	assert.Equal(t, "host=db port=6543 user=u password=p dbname=w sslmode=disable", cfg.DSN())
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: DriverSQLite, JWTSecret: "s", AuthPassword: "pw", TokenTTL: time.Minute}
	require.NoError(t, cfg.Validate())

	missingSecret := *cfg
	missingSecret.JWTSecret = ""
	assert.Error(t, missingSecret.Validate())

	missingPassword := *cfg
	missingPassword.AuthPassword = ""
	assert.Error(t, missingPassword.Validate())

	badDriver := *cfg
	badDriver.DBDriver = "oracle"
	assert.Error(t, badDriver.Validate())

	badTTL := *cfg
	badTTL.TokenTTL = 0
	assert.Error(t, badTTL.Validate())
}
