package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/AbdulWasayUl/go-weather-widget/internal/config"
	"github.com/AbdulWasayUl/go-weather-widget/internal/logger"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"github.com/AbdulWasayUl/go-weather-widget/services/weather"
)

// Source is the weather provider as seen by the pipeline.
type Source interface {
	Current(ctx context.Context, q string) (*weather.CurrentResponse, error)
	Forecast(ctx context.Context, q string, days int) (*weather.ForecastResponse, error)
}

type Options struct {
	ForecastDays      int
	ErrorTimeout      time.Duration
	AnimationDuration time.Duration
	FrameInterval     time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ForecastDays:      cfg.ForecastDays,
		ErrorTimeout:      cfg.ErrorTimeout,
		AnimationDuration: cfg.AnimationDuration,
		FrameInterval:     cfg.FrameInterval,
	}
}

// Query is either a place name or a coordinate pair.
type Query struct {
	PlaceName   string
	Coordinates *models.Coordinates
}

func (q Query) String() string {
	if q.Coordinates != nil {
		return q.Coordinates.String()
	}
	return q.PlaceName
}

// Pipeline turns a query into a current conditions call and a forecast call
// and writes the results to a DisplaySurface.
//
// Every invocation takes a generation number. Renders, errors and the final
// loading reset only land while that number is still the newest, so an older
// request finishing late cannot overwrite a newer one.
type Pipeline struct {
	source   Source
	surface  DisplaySurface
	banner   *ErrorBanner
	animator *Animator
	opts     Options

	mu         sync.Mutex
	generation uint64
	animation  *Animation
	lastQuery  *Query
}

func New(source Source, surface DisplaySurface, opts Options) *Pipeline {
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = 3
	}
	return &Pipeline{
		source:   source,
		surface:  surface,
		banner:   NewErrorBanner(surface, opts.ErrorTimeout),
		animator: NewAnimator(opts.FrameInterval),
		opts:     opts,
	}
}

// FetchByPlaceName loads weather for a free-text place. The returned error
// has already been shown on the surface.
func (p *Pipeline) FetchByPlaceName(ctx context.Context, name string) error {
	query := Query{PlaceName: name}
	return p.run(ctx, query, weather.PlaceQuery(name), MsgLocationNotFound, func(err error) *FetchError {
		var apiErr *weather.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = MsgLocationNotFound
			}
			return &FetchError{Kind: KindQuery, Message: msg, Err: err}
		}
		return networkError(err, MsgLocationNotFound)
	})
}

// FetchByCoordinates loads weather for a position. Provider error details
// are not surfaced on this path.
func (p *Pipeline) FetchByCoordinates(ctx context.Context, lat, lon float64) error {
	coords := models.Coordinates{Lat: lat, Lon: lon}
	query := Query{Coordinates: &coords}
	return p.run(ctx, query, weather.CoordinatesQuery(coords), MsgLocationFallback, func(err error) *FetchError {
		var apiErr *weather.APIError
		if errors.As(err, &apiErr) {
			return &FetchError{Kind: KindQuery, Message: MsgCoordinatesFailed, Err: err}
		}
		return networkError(err, MsgLocationFallback)
	})
}

// LastQuery returns the most recent query that rendered completely.
func (p *Pipeline) LastQuery() (Query, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastQuery == nil {
		return Query{}, false
	}
	return *p.lastQuery, true
}

func networkError(err error, fallback string) *FetchError {
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	return &FetchError{Kind: KindNetwork, Message: msg, Err: err}
}

// run performs both calls for one query. fallback is the message shown for a
// failure that carries no text of its own.
func (p *Pipeline) run(ctx context.Context, query Query, q, fallback string, classify func(error) *FetchError) (err error) {
	token := p.begin()
	logger.Debug("[%d] fetching weather for %s", token, query)

	defer func() {
		if err != nil {
			var fe *FetchError
			if !errors.As(err, &fe) {
				fe = networkError(err, fallback)
			}
			p.commit(token, func() { p.banner.Show(fe.Message) })
			err = fe
		}
		p.commit(token, func() { p.surface.SetLoading(false) })
	}()

	current, err := p.source.Current(ctx, q)
	if err != nil {
		return classify(err)
	}
	p.commit(token, func() { p.renderCurrent(current) })

	forecast, err := p.source.Forecast(ctx, q, p.opts.ForecastDays)
	if err != nil {
		return networkError(err, fallback)
	}
	p.commit(token, func() {
		n := RenderForecast(p.surface, forecast)
		logger.Debug("[%d] rendered %d forecast cards for %s", token, n, query)
		p.lastQuery = &query
	})
	return nil
}

func (p *Pipeline) begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.surface.SetLoading(true)
	p.banner.Clear()
	return p.generation
}

// commit runs fn only if token is still the newest generation.
func (p *Pipeline) commit(token uint64, fn func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.generation {
		logger.Debug("[%d] dropping stale result, generation is %d", token, p.generation)
		return false
	}
	fn()
	return true
}

func (p *Pipeline) renderCurrent(data *weather.CurrentResponse) {
	temp := RenderCurrent(p.surface, data)
	if p.animation != nil {
		p.animation.Cancel()
	}
	p.animation = p.animator.Start(0, temp, p.opts.AnimationDuration, p.surface.SetTemperature)
}

// showFailure displays an error that is not tied to a fetch generation.
func (p *Pipeline) showFailure(fe *FetchError) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner.Show(fe.Message)
	return fe
}

// WaitAnimation blocks until the current temperature animation has finished.
func (p *Pipeline) WaitAnimation(ctx context.Context) error {
	p.mu.Lock()
	a := p.animation
	p.mu.Unlock()
	if a == nil {
		return nil
	}
	select {
	case <-a.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops any running animation.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.animation != nil {
		p.animation.Cancel()
	}
}

// PlaceTrigger wraps a place name search. Blank names yield no trigger.
func (p *Pipeline) PlaceTrigger(source models.TriggerSource, name string) (models.Trigger, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Trigger{}, false
	}
	return models.Trigger{
		Source: source,
		Query:  name,
		RunFunc: func(ctx context.Context) error {
			return p.FetchByPlaceName(ctx, name)
		},
	}, true
}

func (p *Pipeline) LocateTrigger(source models.TriggerSource, loc Locator) models.Trigger {
	return models.Trigger{
		Source: source,
		Query:  "current position",
		RunFunc: func(ctx context.Context) error {
			return p.Locate(ctx, loc)
		},
	}
}

// RefreshTrigger repeats the last fully rendered query, if any.
func (p *Pipeline) RefreshTrigger() (models.Trigger, bool) {
	q, ok := p.LastQuery()
	if !ok {
		return models.Trigger{}, false
	}
	if q.Coordinates != nil {
		c := *q.Coordinates
		return models.Trigger{
			Source: models.SourceRefresh,
			Query:  c.String(),
			RunFunc: func(ctx context.Context) error {
				return p.FetchByCoordinates(ctx, c.Lat, c.Lon)
			},
		}, true
	}
	return p.PlaceTrigger(models.SourceRefresh, q.PlaceName)
}
