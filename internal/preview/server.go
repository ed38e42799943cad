// Package preview serves a live ring over HTTP.
//
// The server owns one ring. Clients read it as SVG, JSON or DOT and change
// it with item requests:
//
//	GET    /ring.svg         render the ring
//	GET    /ring.json        scene snapshot
//	GET    /ring.dot         Graphviz DOT
//	GET    /items            slot table
//	POST   /items            insert {"label", "class", "index"}; index defaults to the end
//	POST   /items/settle     complete every pending entrance effect
//	DELETE /items            pop the last item
//	DELETE /items/{index}    remove the item at index
//
// Added items stay entering until the configured entrance duration elapses.
package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// DefaultAddr is the default listen address.
const DefaultAddr = "127.0.0.1:8473"

// Options configures a [Server].
type Options struct {
	// Entrance is how long new items stay entering. Zero leaves them
	// entering until settled explicitly.
	Entrance time.Duration

	// Render options applied to every artifact.
	Render pipeline.Options

	Logger *log.Logger
}

// Server exposes a ring layout over HTTP. All access to the ring is
// serialised by an internal mutex.
type Server struct {
	mu     sync.Mutex
	doc    *surface.Document
	layout *ring.Layout
	runner *pipeline.Runner
	opts   Options
	logger *log.Logger
	router chi.Router
	timers map[*surface.Element]*time.Timer
}

// NewServer creates a server over an existing ring.
func NewServer(doc *surface.Document, l *ring.Layout, runner *pipeline.Runner, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	s := &Server{
		doc:    doc,
		layout: l,
		runner: runner,
		opts:   opts,
		logger: opts.Logger,
		timers: make(map[*surface.Element]*time.Timer),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/ring.svg", s.handleArtifact(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/ring.json", s.handleArtifact(pipeline.FormatJSON, "application/json"))
	r.Get("/ring.dot", s.handleArtifact(pipeline.FormatDOT, "text/vnd.graphviz"))

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleInsert)
		r.Post("/settle", s.handleSettle)
		r.Delete("/", s.handlePop)
		r.Delete("/{index}", s.handleRemove)
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Close stops pending entrance timers.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for el, t := range s.timers {
		t.Stop()
		delete(s.timers, el)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}

// =============================================================================
// Handlers
// =============================================================================

// handleArtifact renders the current ring in one format.
func (s *Server) handleArtifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scene := s.snapshot()

		opts := s.opts.Render
		opts.Formats = []string{format}
		artifacts, _, hit, err := s.runner.RenderWithCacheInfo(r.Context(), scene, opts)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Cache", cacheHeader(hit))
		_, _ = w.Write(artifacts[format])
	}
}

// insertRequest is the POST /items body.
type insertRequest struct {
	Label string `json:"label"`
	Class string `json:"class,omitempty"`
	Index *int   `json:"index,omitempty"`
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
			return
		}
	}
	if err := errors.ValidateLabel(req.Label); err != nil {
		writeError(w, err)
		return
	}
	if req.Class != "" {
		if err := errors.ValidateClassName(req.Class); err != nil {
			writeError(w, err)
			return
		}
	}

	index := ring.End
	if req.Index != nil {
		index = *req.Index
	}

	s.mu.Lock()
	el := config.NewElement(s.doc, req.Label, req.Class)
	it := s.layout.Insert(el, index)
	s.scheduleEntrance(el)
	pos := s.layout.Len() - 1
	for i, other := range s.layout.Items() {
		if other == it {
			pos = i
		}
	}
	resp := itemResponse{Index: pos, ID: el.ID(), Label: req.Label, Angle: it.Angle(), Entering: it.Entering()}
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "index must be an integer"))
		return
	}
	s.remove(w, index)
}

func (s *Server) handlePop(w http.ResponseWriter, r *http.Request) {
	s.remove(w, ring.End)
}

func (s *Server) remove(w http.ResponseWriter, index int) {
	s.mu.Lock()
	pos := min(max(index, 0), s.layout.Len()-1)
	el := s.layout.Remove(index)
	if el != nil {
		s.cancelEntrance(el)
	}
	s.mu.Unlock()

	if el == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, itemResponse{Index: pos, ID: el.ID(), Label: el.Text()})
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := pipeline.Settle(s.layout)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int{"settled": n})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	scene := s.snapshot()
	items := make([]itemResponse, 0, len(scene.Items))
	for _, it := range scene.Items {
		items = append(items, itemResponse{
			Index:    it.Index,
			ID:       it.ID,
			Label:    it.Label,
			Angle:    it.Angle,
			Entering: it.Entering,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// =============================================================================
// Ring access
// =============================================================================

func (s *Server) snapshot() render.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.Snapshot(s.layout)
}

// scheduleEntrance completes el's entrance after the configured duration.
// Callers hold s.mu.
func (s *Server) scheduleEntrance(el *surface.Element) {
	if s.opts.Entrance <= 0 {
		return
	}
	s.timers[el] = time.AfterFunc(s.opts.Entrance, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.timers[el]; !ok {
			return
		}
		delete(s.timers, el)
		el.Dispatch(surface.EventAnimationEnd)
	})
}

// cancelEntrance drops a pending timer for a removed element.
// Callers hold s.mu.
func (s *Server) cancelEntrance(el *surface.Element) {
	if t, ok := s.timers[el]; ok {
		t.Stop()
		delete(s.timers, el)
	}
}

// =============================================================================
// Responses
// =============================================================================

type itemResponse struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Angle    int    `json:"angle"`
	Entering bool   `json:"entering,omitempty"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidClass, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Close()
		return srv.Shutdown(shutdownCtx)
	}
}
