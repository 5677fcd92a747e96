package server

import (
	"context"
	"fmt"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/unhooked-app/craving-intervention/pkg/blocklist"
	"github.com/unhooked-app/craving-intervention/pkg/common"
	"github.com/unhooked-app/craving-intervention/pkg/enforcement"
	"github.com/unhooked-app/craving-intervention/pkg/handler"
	"github.com/unhooked-app/craving-intervention/pkg/ledger"
	pb "github.com/unhooked-app/craving-intervention/pkg/pb/craving/v1"
	"github.com/unhooked-app/craving-intervention/pkg/timer"
)

// GRPCServer manages the gRPC server lifecycle.
type GRPCServer struct {
	server *grpc.Server
	port   int

	timers     *timer.Service
	controller *enforcement.Controller
	monitor    *enforcement.Monitor
	ledger     *ledger.Service
	blocklist  *blocklist.Store
}

// NewGRPCServer creates a new gRPC server instance.
func NewGRPCServer(
	port int,
	timers *timer.Service,
	controller *enforcement.Controller,
	monitor *enforcement.Monitor,
	ledgerSvc *ledger.Service,
	blocklistStore *blocklist.Store,
) *GRPCServer {
	return &GRPCServer{
		port:       port,
		timers:     timers,
		controller: controller,
		monitor:    monitor,
		ledger:     ledgerSvc,
		blocklist:  blocklistStore,
	}
}

// Setup configures the gRPC server with interceptors and registers handlers.
func (s *GRPCServer) Setup() error {
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		logging.UnaryServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}
	streamInterceptors := []grpc.StreamServerInterceptor{
		logging.StreamServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}

	// Create server with OpenTelemetry instrumentation
	s.server = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.ChainStreamInterceptor(streamInterceptors...),
	)

	foregroundHandler := handler.NewForegroundActivity(s.monitor)
	pb.RegisterForegroundActivityServiceServer(s.server, foregroundHandler)

	interventionHandler := handler.NewIntervention(s.timers, s.controller, s.ledger, s.blocklist)
	pb.RegisterInterventionServiceServer(s.server, interventionHandler)

	logrus.Infof("registered gRPC services: ForegroundActivity and Intervention")

	// Reflection for grpcurl-style tooling, health check for liveness probes.
	reflection.Register(s.server)
	grpc_health_v1.RegisterHealthServer(s.server, health.NewServer())

	logrus.Infof("gRPC reflection and health check enabled")

	return nil
}

// Start begins listening and serving gRPC requests.
func (s *GRPCServer) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	go func() {
		logrus.Infof("gRPC server listening on port %d", s.port)
		if err := s.server.Serve(lis); err != nil {
			logrus.Fatalf("gRPC server failed: %v", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the gRPC server.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down gRPC server...")
	s.server.GracefulStop()
	logrus.Info("gRPC server stopped")
	return nil
}
