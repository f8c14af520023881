package httpbase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// GracefulServer implements an HTTP server with graceful shutdown.
// Graceful shutdown is actually hard to implement correctly
// due to an API design flaw of the Go http package,
// ref: https://nanmu.me/zh-cn/posts/2021/go-http-server-shudown-done-right/
type GracefulServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

type GraceServerOpt struct {
	Port int
	// in-flight requests get this long to finish on shutdown, 5s when zero
	ShutdownTimeout time.Duration
}

// NewGracefulServer returns a server with graceful shutdown
func NewGracefulServer(opt GraceServerOpt, handler http.Handler) (server *GracefulServer) {
	if opt.ShutdownTimeout <= 0 {
		opt.ShutdownTimeout = 5 * time.Second
	}
	server = &GracefulServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", opt.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: opt.ShutdownTimeout,
	}
	return
}

// Run start the http server and block until SIGINT or SIGTERM
func (s *GracefulServer) Run() {
	q := make(chan os.Signal, 1)
	signal.Notify(q, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(q)

	// Initializing the server in a goroutine so that
	// it won't block the graceful shutdown handling below
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", slog.Any("error", err))
			//notify server to stop
			q <- syscall.SIGTERM
		}
	}()

	<-q
	slog.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server failed to shutdown", slog.Any("error", err))
	}

	slog.Info("Server stopped")
}
