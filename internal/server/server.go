package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/handler"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/workers"
)

const healthCheckInterval = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	srv, err := newServer(handlers, cfg, logger)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.workers = workers.New(servers.healthWatcher())

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// listen binds every enabled transport. Already bound listeners are closed
// when a later one fails.
func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				_ = s.httpServer.listener.Close()
			}
			return err
		}
	}
	return nil
}

func (s *server) serve(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.serve)
	}

	g.Go(func() error {
		s.workers.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return s.shutdown()
	})

	err := g.Wait()
	if err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// healthWatcher keeps the gRPC health status in line with the database.
// Nil when gRPC is disabled.
func (s *server) healthWatcher() workers.Worker {
	if s.gRPCServer == nil {
		return nil
	}
	return workers.Func(func(ctx context.Context) {
		s.gRPCServer.handler.WatchDatabase(ctx, healthCheckInterval)
	})
}

func (s *server) shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.shutdown(ctx))
	}

	return errors.Join(errs...)
}
