package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "campus-store", cfg.App.Name)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.NotEmpty(t, cfg.JWT.Secret, "en development se usa un secreto de desarrollo")
	assert.Equal(t, cfg.JWT.Secret, cfg.Slip.Secret, "SLIP_SECRET cae en JWT_SECRET")
	assert.InDelta(t, 1.0, cfg.OTel.SampleRatio, 1e-9)
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("STORE_BACKEND", "Redis")
	v.Set("HTTP_PORT", "9090")
	v.Set("REDIS_DB", "3")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("SLIP_SECRET", "slip")
	v.Set("OTEL_SAMPLE_RATIO", "0.25")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "slip", cfg.Slip.Secret)
	assert.InDelta(t, 0.25, cfg.OTel.SampleRatio, 1e-9)
}

func TestFromViper_BackendDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_BACKEND", "localstorage")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ProductionExigeJWTSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "store", Password: "p@ss:word", DBName: "campus", SSLMode: "disable"}
	assert.Equal(t, "postgres://store:p%40ss%3Aword@db:5432/campus?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
