package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/AbdulWasayUl/go-weather-widget/internal/pipeline"
)

// Terminal prints surface writes as lines. Temperature frames rewrite the
// same line with a carriage return so the animation stays on one row.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	inLine bool
}

var _ pipeline.DisplaySurface = (*Terminal)(nil)

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) println(format string, v ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inLine {
		fmt.Fprintln(t.w)
		t.inLine = false
	}
	fmt.Fprintf(t.w, format+"\n", v...)
}

func (t *Terminal) SetTemperature(value int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "\rtemperature  %d°C   ", value)
	t.inLine = true
}

func (t *Terminal) SetCondition(text string) { t.println("condition    %s", text) }
func (t *Terminal) SetLocation(text string)  { t.println("location     %s", text) }
func (t *Terminal) SetIcon(url, _ string)    { t.println("icon         %s", url) }
func (t *Terminal) SetWind(text string)      { t.println("wind         %s kph", text) }
func (t *Terminal) SetHumidity(text string)  { t.println("humidity     %s%%", text) }
func (t *Terminal) SetPressure(text string)  { t.println("pressure     %s mb", text) }
func (t *Terminal) ClearForecast()           { t.println("forecast") }

func (t *Terminal) AppendForecast(c pipeline.ForecastCard) {
	t.println("  %-4s %3d° %3d°  %s", c.Day, c.MaxTempC, c.MinTempC, c.Condition)
}

func (t *Terminal) SetLoading(loading bool) {
	if loading {
		t.println("loading...")
	}
}

func (t *Terminal) ShowError(message string) { t.println("error: %s", message) }

func (t *Terminal) ClearError() {}
