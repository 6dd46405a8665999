package lookupapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/browscap/pkg/browscap"
	"github.com/dmitrymomot/browscap/pkg/httpserver"
	"github.com/dmitrymomot/browscap/pkg/logger"
)

// Lookuper is the read side of a loaded database. *browscap.DB satisfies it.
type Lookuper interface {
	Search(query string) (browscap.Result, error)
	Schema() browscap.Schema
	Metadata() browscap.Metadata
	Ready(ctx context.Context) error
}

// BatchRequest is the body of POST /lookup.
type BatchRequest struct {
	UserAgents []string `json:"user_agents"`
}

// SchemaResponse is the data of GET /schema.
type SchemaResponse struct {
	Variant  string            `json:"variant"`
	Metadata browscap.Metadata `json:"metadata"`
	Strings  []string          `json:"strings"`
	Ints     []string          `json:"ints"`
	Bools    []string          `json:"bools"`
}

// Handler serves the lookup API.
type Handler struct {
	db      Lookuper
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	router  chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithConfig overrides batch limits. Non-positive values keep the defaults.
func WithConfig(cfg Config) Option {
	return func(h *Handler) {
		if cfg.MaxBatch > 0 {
			h.cfg.MaxBatch = cfg.MaxBatch
		}
		if cfg.MaxBodyBytes > 0 {
			h.cfg.MaxBodyBytes = cfg.MaxBodyBytes
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithRegistry registers metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(h *Handler) {
		if reg != nil {
			h.metrics = newMetrics(reg)
		}
	}
}

// New builds the router around db.
//
// Routes:
//
//	GET  /lookup?ua=...  resolve one user agent (falls back to the User-Agent header)
//	POST /lookup         resolve {"user_agents": [...]}
//	GET  /schema         variant, metadata and property lists
//	GET  /healthz        liveness
//	GET  /readyz         readiness, bound to the database
//	GET  /metrics        Prometheus metrics
func New(db Lookuper, opts ...Option) (*Handler, error) {
	if db == nil {
		return nil, ErrNilLookuper
	}

	h := &Handler{
		db:  db,
		cfg: DefaultConfig(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = newMetrics(prometheus.NewRegistry())
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/lookup", h.lookup)
	r.Post("/lookup", h.batch)
	r.Get("/schema", h.schema)
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(h.log, db.Ready))
	r.Method(http.MethodGet, "/metrics", h.metrics.handler())

	h.router = r
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("ua")
	if query == "" {
		query = r.UserAgent()
	}
	if query == "" {
		writeError(w, ErrEmptyQuery)
		return
	}

	res, err := h.search(r, query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, res.Record(), nil)
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	body := http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit))
			return
		}
		writeError(w, fmt.Errorf("%w: %v", ErrInvalidBody, err))
		return
	}

	switch n := len(req.UserAgents); {
	case n == 0:
		writeError(w, ErrEmptyBatch)
		return
	case n > h.cfg.MaxBatch:
		writeError(w, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, n, h.cfg.MaxBatch))
		return
	}
	h.metrics.batchSize.Observe(float64(len(req.UserAgents)))

	records := make([]browscap.Record, 0, len(req.UserAgents))
	matched := 0
	for _, ua := range req.UserAgents {
		res, err := h.search(r, ua)
		if err != nil {
			writeError(w, err)
			return
		}
		if res.Matched() {
			matched++
		}
		records = append(records, res.Record())
	}

	writeData(w, records, map[string]any{
		"count":   len(records),
		"matched": matched,
	})
}

func (h *Handler) schema(w http.ResponseWriter, _ *http.Request) {
	s := h.db.Schema()
	writeData(w, SchemaResponse{
		Variant:  s.Variant().String(),
		Metadata: h.db.Metadata(),
		Strings:  s.StringProperties(),
		Ints:     s.IntProperties(),
		Bools:    s.BoolProperties(),
	}, nil)
}

// search runs one lookup and records its outcome.
func (h *Handler) search(r *http.Request, query string) (browscap.Result, error) {
	start := time.Now()
	res, err := h.db.Search(query)
	switch {
	case err != nil:
		h.metrics.observe(start, OutcomeError)
		h.log.ErrorContext(r.Context(), "lookup failed", logger.UserAgent(query), logger.Error(err))
	case res.Matched():
		h.metrics.observe(start, OutcomeMatch)
	default:
		h.metrics.observe(start, OutcomeNoMatch)
	}
	return res, err
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.log.DebugContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
