package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "test_key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test_key", cfg.WeatherAPIKey)
	assert.Equal(t, DefaultBaseURL, cfg.WeatherAPIBaseURL)
	assert.Equal(t, "London", cfg.DefaultLocation)
	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, 5*time.Second, cfg.ErrorTimeout)
	assert.Equal(t, time.Second, cfg.AnimationDuration)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Zero(t, cfg.RateLimitRPS, "requests are unthrottled unless configured")
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.False(t, cfg.HasStaticPosition)
	assert.Empty(t, cfg.MongoURI)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "k")
	t.Setenv("WEATHER_API_BASE_URL", "http://localhost:9999/v1/")
	t.Setenv("WEATHER_DEFAULT_LOCATION", "Paris")
	t.Setenv("WEATHER_ERROR_TIMEOUT", "2s")
	t.Setenv("WEATHER_REFRESH_INTERVAL", "10m")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("WEATHER_RATE_LIMIT_RPS", "0.5")
	t.Setenv("GEO_LAT", "51.5")
	t.Setenv("GEO_LON", "-0.12")
	t.Setenv("MONGO_HOST", "mongo")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1", cfg.WeatherAPIBaseURL)
	assert.Equal(t, "Paris", cfg.DefaultLocation)
	assert.Equal(t, 2*time.Second, cfg.ErrorTimeout)
	assert.Equal(t, 10*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.True(t, cfg.HasStaticPosition)
	assert.Equal(t, 51.5, cfg.GeoLat)
	assert.Equal(t, -0.12, cfg.GeoLon)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing api key", env: map[string]string{"WEATHER_API_KEY": ""}},
		{name: "bad duration", env: map[string]string{"WEATHER_API_KEY": "k", "WEATHER_ERROR_TIMEOUT": "soon"}},
		{name: "bad worker count", env: map[string]string{"WEATHER_API_KEY": "k", "WORKER_COUNT": "0"}},
		{name: "bad latitude", env: map[string]string{"WEATHER_API_KEY": "k", "GEO_LAT": "north", "GEO_LON": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
