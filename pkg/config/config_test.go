package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SinSecretoJWTFalla(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secreto")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "0 9 * * *", cfg.Tasks.ExpirationCron)
	assert.Equal(t, 30, cfg.Tasks.ExpirationWindowDays)
	assert.Equal(t, 15*time.Second, cfg.Supabase.Timeout)
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secreto")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co/")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "https://demo.supabase.co", cfg.Supabase.URL)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "cargo", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/cargo?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://x"
	assert.Equal(t, "postgresql://x", c.ConnectionString())
}
