package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/AbdulWasayUl/go-weather-widget/internal/api"
	"github.com/AbdulWasayUl/go-weather-widget/internal/config"
	"github.com/AbdulWasayUl/go-weather-widget/models"
)

// ErrNoForecast is returned when a forecast body decodes without a forecast object.
var ErrNoForecast = errors.New("forecast data missing from response")

// APIError is a non-2xx answer to a current conditions request. Message is
// the provider's own error text and may be empty.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("weather API returned status %d: %s", e.StatusCode, e.Message)
}

type Service struct {
	BaseURL string
	APIKey  string
	Client  *api.Client
}

func NewService(cfg *config.Config) *Service {
	rlSettings := models.RateLimitSettings{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}

	return &Service{
		BaseURL: strings.TrimRight(cfg.WeatherAPIBaseURL, "/"),
		APIKey:  cfg.WeatherAPIKey,
		Client:  api.NewClient(rlSettings, cfg.HTTPTimeout),
	}
}

// PlaceQuery percent-encodes a free-text place name for the q parameter.
// Spaces become %20 rather than +.
func PlaceQuery(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// CoordinatesQuery renders "lat,lon" verbatim.
func CoordinatesQuery(c models.Coordinates) string {
	return c.String()
}

// CurrentURL builds the current.json URL; q must already be encoded.
func (s *Service) CurrentURL(q string) string {
	return fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=no", s.BaseURL, url.QueryEscape(s.APIKey), q)
}

// ForecastURL builds the forecast.json URL; q must already be encoded.
func (s *Service) ForecastURL(q string, days int) string {
	return fmt.Sprintf("%s/forecast.json?key=%s&q=%s&days=%d&aqi=no&alerts=no",
		s.BaseURL, url.QueryEscape(s.APIKey), q, days)
}

// Current fetches current conditions. A non-2xx status yields *APIError.
func (s *Service) Current(ctx context.Context, q string) (*CurrentResponse, error) {
	resp, err := s.Client.Do(ctx, s.CurrentURL(q), nil)
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload errorPayload
		if json.Unmarshal(resp.Body, &payload) == nil && payload.Error != nil {
			apiErr.Code = payload.Error.Code
			apiErr.Message = payload.Error.Message
		}
		return nil, apiErr
	}

	var data CurrentResponse
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse current weather: %w", err)
	}
	return &data, nil
}

// Forecast fetches the daily forecast. The status code is not inspected; a
// body without a forecast object fails with ErrNoForecast.
func (s *Service) Forecast(ctx context.Context, q string, days int) (*ForecastResponse, error) {
	resp, err := s.Client.Do(ctx, s.ForecastURL(q, days), nil)
	if err != nil {
		return nil, err
	}

	var data ForecastResponse
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse forecast: %w", err)
	}
	if data.Forecast == nil {
		return nil, ErrNoForecast
	}
	return &data, nil
}
