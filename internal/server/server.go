package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/mcp"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/web"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// Server wraps the site and MCP handlers with an HTTP listener
type Server struct {
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs the HTTP server listening on addr
func NewServer(addr string, handler http.Handler, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		srv:    httpSrv,
	}
}

// NewMux mounts the site, the MCP stream and the health probe behind the request middleware
func NewMux(site *web.Handler, mcpServer *sdkmcp.Server, log *logging.Logger) http.Handler {
	mux := http.NewServeMux()
	site.Register(mux)
	if mcpServer != nil {
		mux.Handle(mcp.StreamPath, mcp.Handler(mcpServer))
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return web.Middleware(log)(mux)
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
