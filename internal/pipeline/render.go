package pipeline

import (
	"math"
	"strconv"
	"time"

	"github.com/AbdulWasayUl/go-weather-widget/services/weather"
)

const maxForecastCards = 3

// RoundHalfUp rounds to the nearest integer with .5 going toward +Inf,
// so -2.5 becomes -2. The fraction is compared directly because v+0.5 can
// round up in floating point, as with 0.49999999999999994.
func RoundHalfUp(v float64) int {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return int(f) + 1
	}
	return int(f)
}

// IconURL prefixes the provider's scheme-relative icon path with https:.
func IconURL(icon string) string {
	return "https:" + icon
}

// FormatNumber prints a reading as the shortest decimal string, 1013.0 as "1013".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Weekday returns the en-US short weekday for a yyyy-mm-dd date. Dates
// that do not parse are shown as given.
func Weekday(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon")
}

// RenderCurrent writes current conditions and returns the rounded temperature.
func RenderCurrent(s DisplaySurface, data *weather.CurrentResponse) int {
	temp := RoundHalfUp(data.Current.TempC)

	s.SetTemperature(temp)
	s.SetCondition(data.Current.Condition.Text)
	s.SetLocation(data.Location.Name + ", " + data.Location.Country)
	s.SetWind(FormatNumber(data.Current.WindKPH))
	s.SetHumidity(FormatNumber(data.Current.Humidity))
	s.SetPressure(FormatNumber(data.Current.PressureMB))
	s.SetIcon(IconURL(data.Current.Condition.Icon), data.Current.Condition.Text)
	return temp
}

// ForecastCards drops the first day and keeps at most the next three.
func ForecastCards(data *weather.ForecastResponse) []ForecastCard {
	if data == nil || data.Forecast == nil || len(data.Forecast.ForecastDay) < 2 {
		return nil
	}

	days := data.Forecast.ForecastDay[1:]
	if len(days) > maxForecastCards {
		days = days[:maxForecastCards]
	}

	cards := make([]ForecastCard, 0, len(days))
	for _, d := range days {
		cards = append(cards, ForecastCard{
			Day:       Weekday(d.Date),
			IconURL:   IconURL(d.Day.Condition.Icon),
			Condition: d.Day.Condition.Text,
			MaxTempC:  RoundHalfUp(d.Day.MaxTempC),
			MinTempC:  RoundHalfUp(d.Day.MinTempC),
		})
	}
	return cards
}

// RenderForecast replaces the forecast cards and returns how many were drawn.
func RenderForecast(s DisplaySurface, data *weather.ForecastResponse) int {
	s.ClearForecast()
	cards := ForecastCards(data)
	for _, c := range cards {
		s.AppendForecast(c)
	}
	return len(cards)
}
