// Package server exposes the assessor over HTTP. Every request is an
// independent, stateless invocation of the core.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/store"
	"github.com/gin-gonic/gin"
)

// Assessor turns raw measurements into a response.
type Assessor interface {
	Assess(area, pain, exudate any) assessment.Response
}

// Store is the subset of *store.Store used for the assessment log.
type Store interface {
	Record(ctx context.Context, rec store.Record) error
	Recent(ctx context.Context, opts store.QueryOpts) ([]store.Record, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// Options configures a Server.
type Options struct {
	Assessor Assessor  // default thresholds when nil
	Store    Store     // optional; enables recording and history endpoints
	Logger   io.Writer // request log; nil disables it
	Warnings io.Writer // default os.Stderr
}

// Server is the HTTP front end.
type Server struct {
	engine *gin.Engine
	opts   Options
}

const shutdownTimeout = 5 * time.Second

// New builds a Server and registers its routes.
func New(opts Options) *Server {
	if opts.Assessor == nil {
		opts.Assessor = assessment.NewAssessor(nil)
	}
	if opts.Warnings == nil {
		opts.Warnings = os.Stderr
	}

	engine := gin.New()
	if opts.Logger != nil {
		engine.Use(gin.LoggerWithWriter(opts.Logger))
	}
	engine.Use(gin.Recovery())

	s := &Server{engine: engine, opts: opts}

	engine.GET("/healthz", s.health)
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/assess", s.assess)
		if opts.Store != nil {
			v1.GET("/assessments", s.listAssessments)
			v1.GET("/assessments/stats", s.assessmentStats)
		}
	}
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
