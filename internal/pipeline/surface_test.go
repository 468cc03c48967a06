package pipeline

import "sync"

// recorded is everything a recorder has seen.
type recorded struct {
	temperatures []int
	condition    string
	location     string
	iconURL      string
	iconAlt      string
	wind         string
	humidity     string
	pressure     string
	cards        []ForecastCard
	clears       int
	loading      bool
	loadingLog   []bool
	visibleError string
	shownErrors  []string
}

// recorder is a DisplaySurface that keeps every write.
type recorder struct {
	mu sync.Mutex
	r  recorded
}

func (r *recorder) SetTemperature(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.temperatures = append(r.r.temperatures, v)
}

func (r *recorder) SetCondition(text string) { r.set(&r.r.condition, text) }
func (r *recorder) SetLocation(text string)  { r.set(&r.r.location, text) }
func (r *recorder) SetWind(text string)      { r.set(&r.r.wind, text) }
func (r *recorder) SetHumidity(text string)  { r.set(&r.r.humidity, text) }
func (r *recorder) SetPressure(text string)  { r.set(&r.r.pressure, text) }

func (r *recorder) set(field *string, v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*field = v
}

func (r *recorder) SetIcon(url, alt string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.iconURL, r.r.iconAlt = url, alt
}

func (r *recorder) ClearForecast() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.cards = nil
	r.r.clears++
}

func (r *recorder) AppendForecast(card ForecastCard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.cards = append(r.r.cards, card)
}

func (r *recorder) SetLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.loading = loading
	r.r.loadingLog = append(r.r.loadingLog, loading)
}

func (r *recorder) ShowError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.visibleError = message
	r.r.shownErrors = append(r.r.shownErrors, message)
}

func (r *recorder) ClearError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.visibleError = ""
}

func (r *recorder) snapshot() recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.r
	out.temperatures = append([]int(nil), r.r.temperatures...)
	out.cards = append([]ForecastCard(nil), r.r.cards...)
	out.loadingLog = append([]bool(nil), r.r.loadingLog...)
	out.shownErrors = append([]string(nil), r.r.shownErrors...)
	return out
}
