// Package web exposes the HTTP control surface: the field editor API,
// preview and export endpoints, preset management and the embedded editor
// page.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/quartopress/coverforge/internal/state"
)

//go:embed ui
var uiFS embed.FS

// CoverService is what the API needs from the application: current fields,
// field updates, and render entry points.
type CoverService interface {
	Fields() state.Fields
	SetFields(state.Fields)
	RenderPreviewPNG(width int) ([]byte, error)
	ExportPNG() ([]byte, error)
}

// PresetStore persists field records by ID.
type PresetStore interface {
	Save(state.Fields) (string, error)
	Load(id string) (state.Fields, error)
	Delete(id string) error
	List() ([]string, error)
}

type HTTPServer struct {
	Addr    string
	DevMode bool
	Service CoverService
	Presets PresetStore
	Log     *log.Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

func NewHTTPServer(addr string, service CoverService, presets PresetStore, logger *log.Logger) *HTTPServer {
	if logger == nil {
		logger = log.Default()
	}
	return &HTTPServer{Addr: addr, Service: service, Presets: presets, Log: logger}
}

func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}

	r := chi.NewRouter()
	if s.DevMode {
		r.Use(WithDevCORS)
	}
	r.Mount("/api/v1", s.apiV1Router())
	r.Handle("/*", s.uiHandler())

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	go func() {
		err := s.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Error("http server", "err", err)
		}
	}()

	s.Log.Info("editor listening", "addr", ln.Addr().String())
	return nil
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// URL returns the address clients should open, once the listener is up.
func (s *HTTPServer) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *HTTPServer) uiHandler() http.Handler {
	sub, err := fs.Sub(uiFS, "ui")
	if err != nil {
		// The ui directory is embedded at build time; this cannot fail at
		// runtime.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
