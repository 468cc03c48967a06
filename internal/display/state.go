package display

import (
	"sync"
	"time"

	"github.com/AbdulWasayUl/go-weather-widget/internal/pipeline"
)

// Snapshot is a point-in-time copy of everything on the surface.
type Snapshot struct {
	Temperature *int                    `json:"temperature"`
	Condition   string                  `json:"condition"`
	Location    string                  `json:"location"`
	IconURL     string                  `json:"icon_url"`
	IconAlt     string                  `json:"icon_alt"`
	Wind        string                  `json:"wind_kph"`
	Humidity    string                  `json:"humidity"`
	Pressure    string                  `json:"pressure_mb"`
	Forecast    []pipeline.ForecastCard `json:"forecast"`
	Loading     bool                    `json:"loading"`
	Error       string                  `json:"error,omitempty"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// State is an in-memory DisplaySurface read back by the HTTP page and API.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

var _ pipeline.DisplaySurface = (*State)(nil)

func NewState() *State {
	return &State{snap: Snapshot{Forecast: []pipeline.ForecastCard{}}}
}

func (s *State) update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snap)
	s.snap.UpdatedAt = time.Now()
}

func (s *State) SetTemperature(value int) {
	s.update(func(sn *Snapshot) { sn.Temperature = &value })
}

func (s *State) SetCondition(text string) {
	s.update(func(sn *Snapshot) { sn.Condition = text })
}

func (s *State) SetLocation(text string) {
	s.update(func(sn *Snapshot) { sn.Location = text })
}

func (s *State) SetIcon(url, alt string) {
	s.update(func(sn *Snapshot) { sn.IconURL, sn.IconAlt = url, alt })
}

func (s *State) SetWind(text string) {
	s.update(func(sn *Snapshot) { sn.Wind = text })
}

func (s *State) SetHumidity(text string) {
	s.update(func(sn *Snapshot) { sn.Humidity = text })
}

func (s *State) SetPressure(text string) {
	s.update(func(sn *Snapshot) { sn.Pressure = text })
}

func (s *State) ClearForecast() {
	s.update(func(sn *Snapshot) { sn.Forecast = []pipeline.ForecastCard{} })
}

func (s *State) AppendForecast(card pipeline.ForecastCard) {
	s.update(func(sn *Snapshot) { sn.Forecast = append(sn.Forecast, card) })
}

func (s *State) SetLoading(loading bool) {
	s.update(func(sn *Snapshot) { sn.Loading = loading })
}

func (s *State) ShowError(message string) {
	s.update(func(sn *Snapshot) { sn.Error = message })
}

func (s *State) ClearError() {
	s.update(func(sn *Snapshot) { sn.Error = "" })
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.snap
	out.Forecast = append([]pipeline.ForecastCard{}, s.snap.Forecast...)
	if s.snap.Temperature != nil {
		t := *s.snap.Temperature
		out.Temperature = &t
	}
	return out
}
