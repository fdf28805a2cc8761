// Package grpcserver runs the gRPC health probe alongside the HTTP API.
package grpcserver

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Pinger checks reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health serves grpc.health.v1.Health for the whole process (service name "").
type Health struct {
	srv *grpc.Server
	hs  *health.Server
	log *zap.Logger
}

// NewHealth builds the probe server. dev enables server reflection.
func NewHealth(log *zap.Logger, dev bool) *Health {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoverUnary(log),
			LoggingUnary(log),
		),
		grpc.ChainStreamInterceptor(
			RecoverStream(log),
			LoggingStream(log),
		),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if dev {
		reflection.Register(s)
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &Health{srv: s, hs: hs, log: log}
}

// Serve blocks accepting connections on lis.
func (h *Health) Serve(lis net.Listener) error {
	return h.srv.Serve(lis)
}

// SetServing flips the overall status.
func (h *Health) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.hs.SetServingStatus("", st)
}

// Watch pings p every interval and mirrors the result into the status until ctx is done.
func (h *Health) Watch(ctx context.Context, p Pinger, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		err := p.Ping(pctx)
		if err != nil && ctx.Err() == nil {
			h.log.Warn("health: db ping failed", zap.Error(err))
		}
		h.SetServing(err == nil)
	}

	check()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			check()
		}
	}
}

// Stop marks the process not serving and stops gracefully, forcing after timeout.
func (h *Health) Stop(timeout time.Duration) {
	h.hs.Shutdown()
	done := make(chan struct{})
	go func() {
		h.srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		h.srv.Stop()
	}
}
