// Package grpcapi serves expression evaluation over gRPC. The Calculator
// service is described by hand: requests are google.protobuf.StringValue
// and responses google.protobuf.FloatValue, so no generated code is needed.
package grpcapi

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/lemonberrylabs/arith/pkg/config"
	"github.com/lemonberrylabs/arith/pkg/expr"
	"github.com/lemonberrylabs/arith/pkg/types"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "arith.v1.Calculator"

const evaluateMethod = "/" + ServiceName + "/Evaluate"

// CalculatorServer is the server API for the Calculator service.
type CalculatorServer interface {
	Evaluate(context.Context, *wrapperspb.StringValue) (*wrapperspb.FloatValue, error)
}

var calculatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Evaluate", Handler: evaluateHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arith/v1/calculator.proto",
}

func evaluateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: evaluateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Server implements the Calculator service.
type Server struct {
	maxLen int
	health *health.Server
	grpc   *grpc.Server
}

// New creates a new gRPC server. A non-positive maxLen selects the default
// expression length limit.
func New(maxLen int) *Server {
	if maxLen <= 0 {
		maxLen = config.DefaultMaxExpressionLength
	}
	srv := &Server{
		maxLen: maxLen,
		health: health.NewServer(),
	}

	gs := grpc.NewServer()
	gs.RegisterService(&calculatorServiceDesc, srv)
	healthpb.RegisterHealthServer(gs, srv.health)
	srv.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	srv.grpc = gs

	return srv
}

// Serve starts listening on the given address and serves gRPC requests.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	return s.grpc.Serve(lis)
}

// GracefulStop marks the service as not serving and stops the gRPC server
// once in-flight calls finish.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

// Evaluate tokenizes and evaluates the expression in req.
func (s *Server) Evaluate(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.FloatValue, error) {
	input := req.GetValue()
	if input == "" {
		return nil, status.Error(codes.InvalidArgument, "expression is required")
	}
	if len(input) > s.maxLen {
		return nil, status.Errorf(codes.InvalidArgument, "expression exceeds maximum length of %d characters", s.maxLen)
	}

	result, err := expr.Eval(input)
	if err != nil {
		if _, ok := types.AsArithmeticError(err); ok {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Float(result), nil
}

// Client calls a remote Calculator service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Evaluate sends expression to the server and returns its result.
func (c *Client) Evaluate(ctx context.Context, expression string, opts ...grpc.CallOption) (expr.Number, error) {
	out := new(wrapperspb.FloatValue)
	if err := c.cc.Invoke(ctx, evaluateMethod, wrapperspb.String(expression), out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}
