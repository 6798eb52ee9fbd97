package grpcapi

import (
	"context"
	"errors"
	"log"
	"net"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/service"
	"foodordering/payment-svc/pb"
	"foodordering/pkg/auth"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Server exposes the payment operations over gRPC for internal callers
// that prefer it over the REST surface.
type Server struct {
	payments service.PaymentServiceInterface
}

func NewServer(payments service.PaymentServiceInterface) *Server {
	return &Server{payments: payments}
}

var _ pb.PaymentServiceServer = (*Server)(nil)

func (s *Server) ProcessPayment(ctx context.Context, req *pb.ProcessPaymentRequest) (*pb.PaymentResponse, error) {
	claims := auth.ClaimsFromContext(ctx)

	payment, err := s.payments.Process(ctx, claims.UserID, domain.ProcessPaymentRequest{
		OrderID:    req.GetOrderId(),
		Amount:     req.GetAmount(),
		Currency:   req.GetCurrency(),
		Method:     req.GetMethod(),
		CardNumber: req.GetCardNumber(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toResponse(payment), nil
}

func (s *Server) GetPaymentStatus(ctx context.Context, req *pb.PaymentStatusRequest) (*pb.PaymentResponse, error) {
	claims := auth.ClaimsFromContext(ctx)

	payment, err := s.payments.ByTransaction(ctx, req.GetTransactionId())
	if err != nil {
		return nil, toStatus(err)
	}
	if payment.UserID != claims.UserID && !claims.IsAdmin() {
		return nil, status.Error(codes.PermissionDenied, "insufficient permissions")
	}
	return toResponse(payment), nil
}

func (s *Server) RefundPayment(ctx context.Context, req *pb.RefundPaymentRequest) (*pb.PaymentResponse, error) {
	claims := auth.ClaimsFromContext(ctx)
	if !claims.IsAdmin() {
		return nil, status.Error(codes.PermissionDenied, "insufficient permissions")
	}

	payment, err := s.payments.Refund(ctx, req.GetTransactionId(), domain.RefundRequest{
		Amount: req.GetAmount(),
		Reason: req.GetReason(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toResponse(payment), nil
}

func toResponse(payment *domain.Payment) *pb.PaymentResponse {
	return &pb.PaymentResponse{
		TransactionId:  payment.TransactionID,
		OrderId:        payment.OrderID,
		Status:         string(payment.Status),
		Amount:         payment.Amount,
		RefundedAmount: payment.RefundedAmount,
		FailureReason:  payment.FailureReason,
	}
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrDuplicatePayment),
		errors.Is(err, service.ErrNotRefundable),
		errors.Is(err, service.ErrRefundTooLarge):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// AuthInterceptor validates the bearer token from the request metadata
// and stores the claims on the context the handlers receive.
func AuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}

	claims, err := auth.FromAuthorizationHeader(values[0])
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(auth.WithClaims(ctx, claims), req)
}

// StartServer serves the payment gRPC API on addr. It blocks.
func StartServer(addr string, payments service.PaymentServiceInterface) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("Failed to listen for gRPC:", err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(AuthInterceptor))
	pb.RegisterPaymentServiceServer(server, NewServer(payments))

	log.Printf("Payment gRPC server starting on %s", addr)
	log.Fatal(server.Serve(listener))
}
