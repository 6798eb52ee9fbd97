package tests

import (
	"context"
	"strings"
	"testing"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/mocks"
	"foodordering/payment-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("successful charge", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, nil, publisher)

		repo.On("FindCompletedByOrder", ctx, "order-1").Return(nil, service.ErrPaymentNotFound).Once()
		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Payment")).Run(func(args mock.Arguments) {
			payment := args.Get(1).(*domain.Payment)
			payment.ID = 1
			assert.True(t, strings.HasPrefix(payment.TransactionID, "TXN_"))
			assert.Equal(t, domain.PaymentCompleted, payment.Status)
			assert.Equal(t, "USD", payment.Currency)
		}).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.PaymentEvent) bool {
			return e.Type == service.EventPaymentCompleted && e.OrderID == "order-1"
		})).Return(nil).Once()

		payment, err := svc.Process(ctx, "user-1", domain.ProcessPaymentRequest{
			OrderID: "order-1",
			Amount:  23.25,
			Method:  "CARD",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentCompleted, payment.Status)
	})

	t.Run("amount over provider limit fails", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, nil, publisher)

		repo.On("FindCompletedByOrder", ctx, "order-1").Return(nil, service.ErrPaymentNotFound).Once()
		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.PaymentEvent) bool {
			return e.Type == service.EventPaymentFailed
		})).Return(nil).Once()

		payment, err := svc.Process(ctx, "user-1", domain.ProcessPaymentRequest{
			OrderID: "order-1",
			Amount:  10001,
			Method:  "CARD",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentFailed, payment.Status)
		assert.NotEmpty(t, payment.FailureReason)
	})

	t.Run("duplicate payment rejected", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		svc := service.NewPaymentService(repo, nil, nil)

		repo.On("FindCompletedByOrder", ctx, "order-1").
			Return(&domain.Payment{ID: 1, OrderID: "order-1", Status: domain.PaymentCompleted}, nil).Once()

		_, err := svc.Process(ctx, "user-1", domain.ProcessPaymentRequest{
			OrderID: "order-1",
			Amount:  10,
			Method:  "CARD",
		})
		assert.ErrorIs(t, err, service.ErrDuplicatePayment)
	})
}

func TestPaymentService_Refund(t *testing.T) {
	ctx := context.Background()

	completed := func() *domain.Payment {
		return &domain.Payment{
			ID:            1,
			TransactionID: "TXN_abc",
			OrderID:       "order-1",
			UserID:        "user-1",
			Amount:        100,
			Status:        domain.PaymentCompleted,
		}
	}

	t.Run("partial refund", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		svc := service.NewPaymentService(repo, nil, nil)

		repo.On("FindByTransaction", ctx, "TXN_abc").Return(completed(), nil).Once()
		repo.On("ApplyRefund", ctx, int64(1), mock.AnythingOfType("*domain.Refund"), domain.PaymentPartiallyRefunded).Return(nil).Once()

		payment, err := svc.Refund(ctx, "TXN_abc", domain.RefundRequest{Amount: 40, Reason: "cold food"})
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentPartiallyRefunded, payment.Status)
		assert.Equal(t, 40.0, payment.RefundedAmount)
	})

	t.Run("full refund publishes payment.refunded", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, nil, publisher)

		repo.On("FindByTransaction", ctx, "TXN_abc").Return(completed(), nil).Once()
		repo.On("ApplyRefund", ctx, int64(1), mock.AnythingOfType("*domain.Refund"), domain.PaymentRefunded).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.PaymentEvent) bool {
			return e.Type == service.EventPaymentRefunded && e.Amount == 100
		})).Return(nil).Once()

		payment, err := svc.Refund(ctx, "TXN_abc", domain.RefundRequest{})
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentRefunded, payment.Status)
	})

	t.Run("refund exceeding remaining amount rejected", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		svc := service.NewPaymentService(repo, nil, nil)

		payment := completed()
		payment.RefundedAmount = 80
		payment.Status = domain.PaymentPartiallyRefunded
		repo.On("FindByTransaction", ctx, "TXN_abc").Return(payment, nil).Once()

		_, err := svc.Refund(ctx, "TXN_abc", domain.RefundRequest{Amount: 30})
		assert.ErrorIs(t, err, service.ErrRefundTooLarge)
	})

	t.Run("failed payment is not refundable", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		svc := service.NewPaymentService(repo, nil, nil)

		payment := completed()
		payment.Status = domain.PaymentFailed
		repo.On("FindByTransaction", ctx, "TXN_abc").Return(payment, nil).Once()

		_, err := svc.Refund(ctx, "TXN_abc", domain.RefundRequest{Amount: 10})
		assert.ErrorIs(t, err, service.ErrNotRefundable)
	})
}

func TestPaymentService_AddMethod_MasksCard(t *testing.T) {
	ctx := context.Background()
	methods := mocks.NewPaymentMethodRepository(t)
	svc := service.NewPaymentService(mocks.NewPaymentRepository(t), methods, nil)

	methods.On("Insert", ctx, mock.AnythingOfType("*domain.PaymentMethod")).Run(func(args mock.Arguments) {
		method := args.Get(1).(*domain.PaymentMethod)
		method.ID = 5
		assert.Equal(t, "****1111", method.MaskedCard)
		assert.NotContains(t, method.MaskedCard, "4242")
	}).Return(nil).Once()

	method, err := svc.AddMethod(ctx, "user-1", domain.PaymentMethodRequest{
		Type:       "CARD",
		CardNumber: "4111 1111 1111 1111",
		Brand:      "visa",
	})

	assert.NoError(t, err)
	assert.Equal(t, "****1111", method.MaskedCard)
}
