// Package web exposes the POC builder over HTTP.
//
// The server is a thin JSON front door: request decoding, response encoding,
// and status-code mapping live here, while all pipeline and deployment
// semantics stay in their own packages. One Server owns the listener and the
// project registry reference; a build request assembles a fresh deployment
// stage per run so concurrent builds never share a child-process handle.
package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/agent"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/deploy"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/pipeline"
)

// Version is the service version reported by the root endpoint.
const Version = "1.0.0"

// Stages bundles the five generative pipeline stages. They are stateless and
// shared across requests; the deployment stage is built per request.
type Stages struct {
	Refiner   pipeline.Refiner
	Architect pipeline.Architect
	Backend   pipeline.BackendGenerator
	Frontend  pipeline.FrontendGenerator
	Reviewer  pipeline.Reviewer
}

// Options configures a Server.
type Options struct {
	// Port the server listens on. Required.
	Port int

	// Stages are the shared generative pipeline stages. Required.
	Stages Stages

	// NewLauncher creates a launcher for one deployment. Required.
	NewLauncher func() *deploy.Launcher

	// Registry tracks live deployments. Required.
	Registry *deploy.Registry

	// AgentInfos describes the configured agents for introspection.
	AgentInfos []agent.Info

	// Models maps stage node names to the model each one uses.
	Models map[string]string

	// BackendPort is the port generated backends listen on, used to build
	// the advertised backend URL for running projects.
	BackendPort int

	// Logger receives request and lifecycle logs.
	Logger zerolog.Logger
}

// Server is the HTTP front door for the POC builder.
type Server struct {
	opts   Options
	logger zerolog.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer creates a Server. It does not bind the listener; call Start.
func NewServer(opts Options) *Server {
	return &Server{
		opts:   opts,
		logger: opts.Logger,
	}
}

// Start binds the TCP listener and begins serving in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("server already started")
	}

	addr := fmt.Sprintf(":%d", s.opts.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}
	s.listener = listener

	server := &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.server = server

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("http server stopped unexpectedly")
		}
	}()

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("http server listening")
	return nil
}

// Shutdown drains in-flight requests, then stops every live deployment so no
// generated backend outlives the service.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "http shutdown failed")
		}
	}
	return s.opts.Registry.StopAll(ctx)
}

// Addr returns the bound address once the server has started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/agents", s.handleAgents)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("GET /api/workflow/info", s.handleWorkflowInfo)
	mux.HandleFunc("POST /api/build-poc", s.handleBuild)
	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	mux.HandleFunc("GET /api/projects/{id}/frontend", s.handleProjectFrontend)
	mux.HandleFunc("DELETE /api/projects/{id}", s.handleStopProject)
	return mux
}
