package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/AbdulWasayUl/go-weather-widget/internal/channels"
	"github.com/AbdulWasayUl/go-weather-widget/internal/display"
	"github.com/AbdulWasayUl/go-weather-widget/internal/logger"
	"github.com/AbdulWasayUl/go-weather-widget/internal/pipeline"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Submitter queues triggers for the worker pool.
type Submitter interface {
	Submit(t models.Trigger) error
}

// PresetLister returns the named shortcut places.
type PresetLister interface {
	List(ctx context.Context) ([]models.Preset, error)
}

type Server struct {
	pipeline *pipeline.Pipeline
	state    *display.State
	queue    Submitter
	locator  pipeline.Locator
	presets  PresetLister
}

// NewServer wires the handlers. locator and presets may be nil.
func NewServer(p *pipeline.Pipeline, state *display.State, queue Submitter, locator pipeline.Locator, presets PresetLister) *Server {
	return &Server{pipeline: p, state: state, queue: queue, locator: locator, presets: presets}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearchForm)

	r.Route("/api", func(r chi.Router) {
		s.RegisterRoutes(r)
	})
	return r
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/weather", s.handleWeather)
	r.Post("/search", s.handleSearch)
	r.Post("/locate", s.handleLocate)
	r.Get("/presets", s.handlePresets)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) submit(w http.ResponseWriter, t models.Trigger) bool {
	if err := s.queue.Submit(t); err != nil {
		logger.Error("[%s] failed to queue %q: %v", t.Source, t.Query, err)
		status := http.StatusServiceUnavailable
		if !errors.Is(err, channels.ErrQueueFull) && !errors.Is(err, channels.ErrClosed) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, map[string]string{"error": "failed to queue request"})
		return false
	}
	return true
}

func (s *Server) handleWeather(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.state.Snapshot())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	source := models.SourceSearch
	if r.FormValue("source") == string(models.SourceEnter) {
		source = models.SourceEnter
	}

	t, ok := s.pipeline.PlaceTrigger(source, r.FormValue("q"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter 'q' is required"})
		return
	}
	if !s.submit(w, t) {
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued", "query": t.Query})
}

func (s *Server) handleSearchForm(w http.ResponseWriter, r *http.Request) {
	if t, ok := s.pipeline.PlaceTrigger(models.SourceEnter, r.URL.Query().Get("q")); ok {
		if !s.submit(w, t) {
			return
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLocate takes a browser-resolved position (lat, lon), a browser-side
// failure (error=denied or error=unsupported), or nothing, in which case the
// server's own locator answers.
func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	var loc pipeline.Locator
	latStr, lonStr := r.FormValue("lat"), r.FormValue("lon")

	switch {
	case latStr != "" && lonStr != "":
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lat parameter"})
			return
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lon parameter"})
			return
		}
		loc = pipeline.StaticLocator{Position: models.Coordinates{Lat: lat, Lon: lon}}
	case strings.EqualFold(r.FormValue("error"), "denied"):
		loc = pipeline.DeniedLocator{}
	case strings.EqualFold(r.FormValue("error"), "unsupported"):
		loc = nil
	default:
		loc = s.locator
	}

	if !s.submit(w, s.pipeline.LocateTrigger(models.SourceLocate, loc)) {
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (s *Server) listPresets(ctx context.Context) ([]models.Preset, error) {
	if s.presets == nil {
		return []models.Preset{}, nil
	}
	return s.presets.List(ctx)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.listPresets(r.Context())
	if err != nil {
		logger.Error("failed to list presets: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to list presets"})
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

type pageData struct {
	Weather display.Snapshot
	Presets []models.Preset
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	presets, err := s.listPresets(r.Context())
	if err != nil {
		logger.Error("failed to list presets: %v", err)
		presets = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, pageData{Weather: s.state.Snapshot(), Presets: presets}); err != nil {
		logger.Error("failed to render page: %v", err)
	}
}
