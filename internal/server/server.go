// Package server renders SGF records over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorgonia/goban"
	"github.com/gorgonia/goban/internal/metrics"
	"github.com/gorgonia/goban/theme"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MaxRecord bounds the size of a request body.
const MaxRecord = 1 << 20

// Server is the render service.
type Server struct {
	server  *http.Server
	logger  *zap.Logger
	metrics *metrics.Collector
	canvas  int
}

// New creates a Server listening on addr. Images are canvas pixels wide.
func New(addr string, canvas int, logger *zap.Logger, m *metrics.Collector) *Server {
	s := &Server{
		logger:  logger,
		metrics: m,
		canvas:  canvas,
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router returns the handler of the service.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/render", s.HandleRender)
	r.Get("/themes", s.HandleThemes)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok\n")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("serving", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error { return s.server.Shutdown(ctx) }

type errorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// HandleRender renders the SGF record in the request body. The query string
// takes theme, kifu, move and format (png or gif).
func (s *Server) HandleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = "png"
	}
	opts := goban.Options{
		Theme:  q.Get("theme"),
		Canvas: s.canvas,
		Logger: s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context()))),
	}
	themeLabel := opts.Theme
	if themeLabel == "" {
		themeLabel = theme.Default
	}

	fail := func(status int, kind, msg string) {
		s.metrics.RecordRender(format, themeLabel, kind, time.Since(start))
		writeJSON(w, status, errorResponse{Kind: kind, Error: msg})
	}

	if v := q.Get("kifu"); v != "" {
		kifu, err := strconv.ParseBool(v)
		if err != nil {
			fail(http.StatusBadRequest, "bad request", "kifu: "+err.Error())
			return
		}
		opts.Kifu = kifu
	}
	if v := q.Get("move"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(http.StatusBadRequest, "bad request", "move: "+err.Error())
			return
		}
		opts.MoveNumber = goban.Moves(n)
	}
	var render func(string, io.Writer, goban.Options) (*goban.Result, error)
	var contentType string
	switch format {
	case "png":
		render, contentType = goban.Render, "image/png"
	case "gif":
		render, contentType = goban.Animate, "image/gif"
	default:
		fail(http.StatusBadRequest, "bad request", "format must be png or gif")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRecord))
	if err != nil {
		fail(http.StatusRequestEntityTooLarge, "bad request", err.Error())
		return
	}

	var buf bytes.Buffer
	res, err := render(string(body), &buf, opts)
	if err != nil {
		kind := goban.KindOf(err)
		s.logger.Info("render failed", zap.Stringer("kind", kind), zap.Error(err))
		fail(statusOf(kind), kind.String(), err.Error())
		return
	}

	s.metrics.RecordRender(format, themeLabel, metrics.OutcomeOK, time.Since(start))
	s.metrics.RecordMoves(res.Applied)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Goban-Applied", strconv.Itoa(res.Applied))
	w.Header().Set("X-Goban-Total", strconv.Itoa(res.Total))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}

// HandleThemes lists the available themes.
func (s *Server) HandleThemes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"default": theme.Default,
		"themes":  theme.Names(),
	})
}

func statusOf(k goban.Kind) int {
	switch k {
	case goban.KindParse:
		return http.StatusBadRequest
	case goban.KindConfig, goban.KindSemantic:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
