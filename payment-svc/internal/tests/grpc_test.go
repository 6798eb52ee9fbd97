package tests

import (
	"context"
	"testing"

	grpcapi "foodordering/payment-svc/internal/api/grpc"
	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/mocks"
	"foodordering/payment-svc/internal/service"
	"foodordering/payment-svc/pb"
	"foodordering/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func customerContext() context.Context {
	return auth.WithClaims(context.Background(), &auth.Claims{UserID: "user-1", Role: auth.RoleCustomer})
}

func adminContext() context.Context {
	return auth.WithClaims(context.Background(), &auth.Claims{UserID: "admin-1", Role: auth.RoleAdmin})
}

func TestGRPCProcessPayment(t *testing.T) {
	repo := mocks.NewPaymentRepository(t)
	server := grpcapi.NewServer(service.NewPaymentService(repo, nil, nil))

	repo.On("FindCompletedByOrder", mock.Anything, "order-1").Return(nil, service.ErrPaymentNotFound).Once()
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()

	resp, err := server.ProcessPayment(customerContext(), &pb.ProcessPaymentRequest{
		OrderId: "order-1",
		Amount:  23.25,
		Method:  "CARD",
	})

	assert.NoError(t, err)
	assert.Equal(t, "order-1", resp.GetOrderId())
	assert.Equal(t, "COMPLETED", resp.GetStatus())
	assert.NotEmpty(t, resp.GetTransactionId())
}

func TestGRPCProcessPayment_Duplicate(t *testing.T) {
	repo := mocks.NewPaymentRepository(t)
	server := grpcapi.NewServer(service.NewPaymentService(repo, nil, nil))

	repo.On("FindCompletedByOrder", mock.Anything, "order-1").
		Return(&domain.Payment{ID: 1, Status: domain.PaymentCompleted}, nil).Once()

	_, err := server.ProcessPayment(customerContext(), &pb.ProcessPaymentRequest{
		OrderId: "order-1",
		Amount:  23.25,
		Method:  "CARD",
	})

	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGRPCGetPaymentStatus(t *testing.T) {
	payment := &domain.Payment{
		ID:            1,
		TransactionID: "TXN_abc",
		OrderID:       "order-1",
		UserID:        "user-1",
		Amount:        23.25,
		Status:        domain.PaymentCompleted,
	}

	t.Run("owner allowed", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		server := grpcapi.NewServer(service.NewPaymentService(repo, nil, nil))
		repo.On("FindByTransaction", mock.Anything, "TXN_abc").Return(payment, nil).Once()

		resp, err := server.GetPaymentStatus(customerContext(), &pb.PaymentStatusRequest{TransactionId: "TXN_abc"})
		assert.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.GetStatus())
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		server := grpcapi.NewServer(service.NewPaymentService(repo, nil, nil))
		repo.On("FindByTransaction", mock.Anything, "TXN_abc").Return(payment, nil).Once()

		stranger := auth.WithClaims(context.Background(), &auth.Claims{UserID: "user-2", Role: auth.RoleCustomer})
		_, err := server.GetPaymentStatus(stranger, &pb.PaymentStatusRequest{TransactionId: "TXN_abc"})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("unknown transaction", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		server := grpcapi.NewServer(service.NewPaymentService(repo, nil, nil))
		repo.On("FindByTransaction", mock.Anything, "TXN_missing").Return(nil, service.ErrPaymentNotFound).Once()

		_, err := server.GetPaymentStatus(customerContext(), &pb.PaymentStatusRequest{TransactionId: "TXN_missing"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestGRPCRefundPayment(t *testing.T) {
	t.Run("customer denied", func(t *testing.T) {
		server := grpcapi.NewServer(service.NewPaymentService(mocks.NewPaymentRepository(t), nil, nil))

		_, err := server.RefundPayment(customerContext(), &pb.RefundPaymentRequest{TransactionId: "TXN_abc", Amount: 10})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("admin refunds fully", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		server := grpcapi.NewServer(service.NewPaymentService(repo, nil, nil))

		repo.On("FindByTransaction", mock.Anything, "TXN_abc").Return(&domain.Payment{
			ID: 1, TransactionID: "TXN_abc", UserID: "user-1", Amount: 100, Status: domain.PaymentCompleted,
		}, nil).Once()
		repo.On("ApplyRefund", mock.Anything, int64(1), mock.AnythingOfType("*domain.Refund"), domain.PaymentRefunded).Return(nil).Once()

		resp, err := server.RefundPayment(adminContext(), &pb.RefundPaymentRequest{TransactionId: "TXN_abc"})
		assert.NoError(t, err)
		assert.Equal(t, "REFUNDED", resp.GetStatus())
		assert.Equal(t, 100.0, resp.GetRefundedAmount())
	})
}
