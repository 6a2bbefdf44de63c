package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-contact-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc %s: %w", errListen, g.address, err)
	}
	g.listener = listener
	return nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("launching gRPC server")

	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// shutdown flips health to NOT_SERVING, then drains in-flight calls. Calls
// still running when ctx expires are cut off.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
