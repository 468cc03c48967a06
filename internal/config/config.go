package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL  = "https://api.weatherapi.com/v1"
	DefaultLocation = "London"
)

// Config holds the application configuration
type Config struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	DefaultLocation   string
	ForecastDays      int
	ErrorTimeout      time.Duration
	AnimationDuration time.Duration
	FrameInterval     time.Duration
	HTTPTimeout       time.Duration
	RateLimitRPS      float64
	RateLimitBurst    int
	RefreshInterval   time.Duration
	WorkerCount       int
	QueueSize         int
	HTTPPort          string
	LogLevel          string

	// GeoLat/GeoLon are only meaningful when HasStaticPosition is set.
	HasStaticPosition bool
	GeoLat            float64
	GeoLon            float64

	MongoURI                    string
	MongoUser                   string
	MongoPass                   string
	MongoAuthDB                 string
	DBWeather                   string
	CollectionPresets           string
	CollectionMigrationsHistory string
}

// Load reads the optional .env file and builds the configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		WeatherAPIKey:               os.Getenv("WEATHER_API_KEY"),
		WeatherAPIBaseURL:           strings.TrimRight(getEnv("WEATHER_API_BASE_URL", DefaultBaseURL), "/"),
		DefaultLocation:             getEnv("WEATHER_DEFAULT_LOCATION", DefaultLocation),
		HTTPPort:                    getEnv("HTTP_PORT", "8080"),
		LogLevel:                    getEnv("LOG_LEVEL", "info"),
		MongoUser:                   os.Getenv("MONGO_USER"),
		MongoPass:                   os.Getenv("MONGO_PASS"),
		MongoAuthDB:                 getEnv("MONGO_AUTH_DB", "admin"),
		DBWeather:                   getEnv("DB_WEATHER_NAME", "weather_widget"),
		CollectionPresets:           getEnv("COLLECTION_PRESETS", "presets"),
		CollectionMigrationsHistory: getEnv("COLLECTION_MIGRATIONS_HISTORY", "migrations_history"),
		MongoURI:                    getMongoURI(),
	}

	var err error
	if cfg.ForecastDays, err = getInt("WEATHER_FORECAST_DAYS", 3); err != nil {
		return nil, err
	}
	if cfg.ErrorTimeout, err = getDuration("WEATHER_ERROR_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.AnimationDuration, err = getDuration("WEATHER_ANIMATION_DURATION", time.Second); err != nil {
		return nil, err
	}
	if cfg.FrameInterval, err = getDuration("WEATHER_FRAME_INTERVAL", 16*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getDuration("WEATHER_HTTP_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getFloat("WEATHER_RATE_LIMIT_RPS", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("WEATHER_RATE_LIMIT_BURST", 3); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getDuration("WEATHER_REFRESH_INTERVAL", 0); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = getInt("WORKER_COUNT", 2); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = getInt("QUEUE_SIZE", 100); err != nil {
		return nil, err
	}

	lat, lon := os.Getenv("GEO_LAT"), os.Getenv("GEO_LON")
	if lat != "" && lon != "" {
		if cfg.GeoLat, err = strconv.ParseFloat(lat, 64); err != nil {
			return nil, fmt.Errorf("invalid GEO_LAT %q: %w", lat, err)
		}
		if cfg.GeoLon, err = strconv.ParseFloat(lon, 64); err != nil {
			return nil, fmt.Errorf("invalid GEO_LON %q: %w", lon, err)
		}
		cfg.HasStaticPosition = true
	}

	if cfg.WeatherAPIKey == "" {
		return nil, errors.New("WEATHER_API_KEY is required")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be positive, got %d", cfg.WorkerCount)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

// getMongoURI constructs the MongoDB URI from environment variables.
// An unset MONGO_HOST disables the preset store.
func getMongoURI() string {
	host := os.Getenv("MONGO_HOST")
	if host == "" {
		return ""
	}
	port := getEnv("MONGO_PORT", "27017")
	return "mongodb://" + host + ":" + port
}
