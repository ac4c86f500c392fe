// Package apiServer is the operator control surface: bulk allow/deny
// updates and a listing of both sets, guarded by a pre-shared key.
package apiServer

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/i5heu/relay-gatekeeper/internal/directory"
)

// HeaderAPIKey carries the pre-shared key on every request.
const HeaderAPIKey = "X-Api-Key"

type Server struct {
	router *gin.Engine
	dir    directory.Directory
	log    *slog.Logger
	apiKey string
}

type Option func(*Server)

// New builds the control server. Requests are refused unless apiKey is
// non-empty and matches the header exactly.
func New(dir directory.Directory, apiKey string, opts ...Option) *Server { // A
	s := &Server{
		router: gin.New(),
		dir:    dir,
		log:    slog.Default(),
		apiKey: apiKey,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery(), s.requireKey)
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.POST("/update", s.handleUpdate)
	s.router.GET("/users", s.handleUsers)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.log = logger
		}
	}
}
