package display

import "github.com/AbdulWasayUl/go-weather-widget/internal/pipeline"

// Multi fans every write out to each surface in order.
type Multi []pipeline.DisplaySurface

var _ pipeline.DisplaySurface = Multi(nil)

func (m Multi) SetTemperature(value int) {
	for _, s := range m {
		s.SetTemperature(value)
	}
}

func (m Multi) SetCondition(text string) {
	for _, s := range m {
		s.SetCondition(text)
	}
}

func (m Multi) SetLocation(text string) {
	for _, s := range m {
		s.SetLocation(text)
	}
}

func (m Multi) SetIcon(url, alt string) {
	for _, s := range m {
		s.SetIcon(url, alt)
	}
}

func (m Multi) SetWind(text string) {
	for _, s := range m {
		s.SetWind(text)
	}
}

func (m Multi) SetHumidity(text string) {
	for _, s := range m {
		s.SetHumidity(text)
	}
}

func (m Multi) SetPressure(text string) {
	for _, s := range m {
		s.SetPressure(text)
	}
}

func (m Multi) ClearForecast() {
	for _, s := range m {
		s.ClearForecast()
	}
}

func (m Multi) AppendForecast(card pipeline.ForecastCard) {
	for _, s := range m {
		s.AppendForecast(card)
	}
}

func (m Multi) SetLoading(loading bool) {
	for _, s := range m {
		s.SetLoading(loading)
	}
}

func (m Multi) ShowError(message string) {
	for _, s := range m {
		s.ShowError(message)
	}
}

func (m Multi) ClearError() {
	for _, s := range m {
		s.ClearError()
	}
}
