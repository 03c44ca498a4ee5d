package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lixenwraith/finality-race/core"
	"github.com/lixenwraith/finality-race/status"
)

const (
	metricsNamespace       = "finality_race"
	metricsShutdownTimeout = 2 * time.Second
)

type metricsServer struct {
	srv  *http.Server
	addr string
}

// startMetrics serves the status registry on addr under /metrics
func startMetrics(addr string, reg *status.Registry, log *zap.Logger) (*metricsServer, error) {
	promReg := prometheus.NewRegistry()
	if err := promReg.Register(status.NewCollector(reg, metricsNamespace)); err != nil {
		return nil, fmt.Errorf("registering collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	m := &metricsServer{
		srv:  &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		addr: ln.Addr().String(),
	}
	core.Go(func() {
		if err := m.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", zap.Error(err))
		}
	})
	log.Info("metrics listening", zap.String("addr", m.addr))
	return m, nil
}

func (m *metricsServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	return m.srv.Shutdown(ctx)
}
