package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-pong/core"
)

// NewRegistry creates a registry holding the score collector and the Go runtime collector
func NewRegistry(source SnapshotSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewScoreCollector(source),
		collectors.NewGoCollector(),
	)
	return reg
}

// Handler returns the /metrics handler for reg
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Server exposes /metrics until Shutdown
type Server struct {
	srv *http.Server
}

// Serve starts an HTTP server on addr in the background
func Serve(addr string, reg *prometheus.Registry) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(reg))

	s := &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	core.Go(func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[metrics] server on %s stopped: %v", addr, err)
		}
	})
	log.Printf("[metrics] serving on %s/metrics", addr)
	return s
}

// Shutdown stops the server, waiting up to the context deadline
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	return nil
}
