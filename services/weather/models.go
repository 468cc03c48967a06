package weather

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type Location struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TzID    string  `json:"tz_id"`
}

type Current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	Condition   Condition `json:"condition"`
	WindKPH     float64   `json:"wind_kph"`
	Humidity    float64   `json:"humidity"`
	PressureMB  float64   `json:"pressure_mb"`
}

// CurrentResponse is the subset of current.json the widget renders.
type CurrentResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

type DaySummary struct {
	MaxTempC  float64   `json:"maxtemp_c"`
	MinTempC  float64   `json:"mintemp_c"`
	Condition Condition `json:"condition"`
}

type ForecastDay struct {
	Date string     `json:"date"`
	Day  DaySummary `json:"day"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// ForecastResponse mirrors forecast.json. Forecast is nil when the body
// carried no forecast object, which is how error payloads decode.
type ForecastResponse struct {
	Location Location  `json:"location"`
	Current  Current   `json:"current"`
	Forecast *Forecast `json:"forecast"`
}

type errorPayload struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
