package pipeline

// ForecastCard is one rendered forecast day.
type ForecastCard struct {
	Day       string `json:"day"`
	IconURL   string `json:"icon_url"`
	Condition string `json:"condition"`
	MaxTempC  int    `json:"max_temp_c"`
	MinTempC  int    `json:"min_temp_c"`
}

// DisplaySurface is the set of output fields the pipeline writes to.
// Implementations must be safe for concurrent use: the temperature
// animation and the error timeout write from their own goroutines.
type DisplaySurface interface {
	SetTemperature(value int)
	SetCondition(text string)
	SetLocation(text string)
	SetIcon(url, alt string)
	SetWind(text string)
	SetHumidity(text string)
	SetPressure(text string)
	ClearForecast()
	AppendForecast(card ForecastCard)
	SetLoading(loading bool)
	// ShowError replaces whatever error is visible with message.
	ShowError(message string)
	ClearError()
}
