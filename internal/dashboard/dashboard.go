// Package dashboard serves the browser world clock: an embedded page plus
// the JSON and SVG endpoints it polls.
package dashboard

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moggisen/World-Clock/internal/cities"
	"github.com/moggisen/World-Clock/internal/config"
	"github.com/moggisen/World-Clock/internal/face"
	"github.com/moggisen/World-Clock/internal/wallclock"
)

//go:embed static
var staticFiles embed.FS

const dateLayout = "Mon Jan 02 2006"

// Dashboard serves the web page and API endpoints.
type Dashboard struct {
	registry *cities.Registry
	cfg      *config.Config
	metrics  *Metrics
	now      func() time.Time
}

// Option customizes a Dashboard.
type Option func(*Dashboard)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithMetrics shares a Metrics instance instead of creating one.
func WithMetrics(m *Metrics) Option {
	return func(d *Dashboard) { d.metrics = m }
}

// New creates a Dashboard handler.
func New(cfg *config.Config, reg *cities.Registry, opts ...Option) *Dashboard {
	d := &Dashboard{registry: reg, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	if d.metrics == nil {
		d.metrics = NewMetrics()
	}
	return d
}

// Handler returns the router with all dashboard routes.
func (d *Dashboard) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", d.metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/common-cities", wrap(d.handleCommonCities))
		api.Get("/timezones/validate", wrap(d.handleValidate))
		api.Get("/cities", wrap(d.handleList))
		api.Post("/cities", wrap(d.handleAdd))
		api.Get("/cities/{id}", wrap(d.handleDetail))
		api.Delete("/cities/{id}", wrap(d.handleRemove))
		api.Get("/cities/{id}/clock.svg", wrap(d.handleSVG))
	})

	return r
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps handler errors to HTTP status codes.
func wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, cities.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, cities.ErrDuplicate):
			status = http.StatusConflict
		case errors.Is(err, cities.ErrEmptyName), errors.Is(err, cities.ErrInvalidTimezone), errors.Is(err, errBadRequest):
			status = http.StatusBadRequest
		default:
			log.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
	}
}

var errBadRequest = errors.New("bad request")

type clockView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Offset   string `json:"offset"`
	Fallback bool   `json:"fallback"`
}

type detailView struct {
	clockView
	WallClock wallclock.Time `json:"wall_clock"`
	Geometry  face.Geometry  `json:"geometry"`
	Prev      string         `json:"prev"`
	Next      string         `json:"next"`
}

func (d *Dashboard) read(c cities.City, now time.Time, mode string) (clockView, wallclock.Time) {
	t, ok := wallclock.Lookup(now, c.Timezone)
	d.metrics.observe(mode, ok)
	return clockView{
		ID:       c.ID,
		Name:     c.Name,
		Timezone: c.Timezone,
		Time:     wallclock.FormatDigital(t),
		Date:     wallclock.In(now, c.Timezone).Format(dateLayout),
		Offset:   wallclock.UTCOffset(now, c.Timezone),
		Fallback: !ok,
	}, t
}

func (d *Dashboard) handleCommonCities(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, cities.CommonCities())
	return nil
}

type validation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (d *Dashboard) handleValidate(w http.ResponseWriter, r *http.Request) error {
	tz := r.URL.Query().Get("tz")
	if err := wallclock.Validate(tz); err != nil {
		writeJSON(w, http.StatusOK, validation{Error: wallclock.InvalidTimezoneMessage})
		return nil
	}
	writeJSON(w, http.StatusOK, validation{Valid: true})
	return nil
}

func (d *Dashboard) handleList(w http.ResponseWriter, r *http.Request) error {
	list, err := d.registry.List(r.Context())
	if err != nil {
		return err
	}
	d.metrics.cities.Set(float64(len(list)))

	now := d.now()
	views := make([]clockView, 0, len(list))
	for _, c := range list {
		v, _ := d.read(c, now, "digital")
		views = append(views, v)
	}
	writeJSON(w, http.StatusOK, views)
	return nil
}

type addRequest struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

func (d *Dashboard) handleAdd(w http.ResponseWriter, r *http.Request) error {
	var body addRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return errors.Join(errBadRequest, err)
	}
	c, err := d.registry.Add(r.Context(), body.Name, body.Timezone)
	if err != nil {
		return err
	}
	log.Printf("CITIES: added %s (%s)", c.Name, c.Timezone)
	writeJSON(w, http.StatusCreated, c)
	return nil
}

func (d *Dashboard) handleRemove(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := d.registry.Remove(r.Context(), id); err != nil {
		return err
	}
	log.Printf("CITIES: removed %s", id)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (d *Dashboard) handleDetail(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	c, _, err := d.registry.Find(ctx, id)
	if err != nil {
		return err
	}
	prev, err := d.registry.Prev(ctx, id)
	if err != nil {
		return err
	}
	next, err := d.registry.Next(ctx, id)
	if err != nil {
		return err
	}

	v, t := d.read(c, d.now(), "analog")
	writeJSON(w, http.StatusOK, detailView{
		clockView: v,
		WallClock: t,
		Geometry:  face.Compute(t, d.radius(r)),
		Prev:      prev.ID,
		Next:      next.ID,
	})
	return nil
}

func (d *Dashboard) handleSVG(w http.ResponseWriter, r *http.Request) error {
	c, _, err := d.registry.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	_, t := d.read(c, d.now(), "analog")

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	return face.WriteSVG(w, face.Compute(t, d.radius(r)))
}

// radius reads the ?radius= query parameter, defaulting to the configured
// analog radius.
func (d *Dashboard) radius(r *http.Request) float64 {
	if v := r.URL.Query().Get("radius"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return d.cfg.Clock.AnalogRadius
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: encode response: %v", err)
	}
}
