package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
)

func TestSubscriptionHandler_Plans(t *testing.T) {
	s := newTestServer(t)

	s.subscriptions.EXPECT().Plans(mock.Anything, customerActor).Return([]domain.Plan{
		{ID: "monthly", Name: "Monthly", SubscriptionType: domain.SubscriptionMonthly, Price: 50000, Currency: "IDR", DurationDays: 30},
	}, nil)

	w := s.do(t, customerActor, http.MethodGet, "/api/v1/payments/plans", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "monthly", data[0].(map[string]any)["id"])
}

func TestSubscriptionHandler_Plans_RequiresLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, domain.Actor{}, http.MethodGet, "/api/v1/payments/plans", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, customerActor, http.MethodPost, "/api/v1/payments/create-subscription", map[string]any{"userEmail": "nope"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := decode(t, w)["fields"].(map[string]any)
		assert.Equal(t, "plan_id_required", fields["planId"])
		assert.Equal(t, "invalid_email_format", fields["userEmail"])
	})

	t.Run("invoice created", func(t *testing.T) {
		s := newTestServer(t)
		req := domain.CheckoutRequest{PlanID: "monthly", UserEmail: "reader@example.com"}
		s.subscriptions.EXPECT().CreateSubscription(mock.Anything, customerActor, req).Return(&domain.CheckoutResult{
			Success:    true,
			PaymentURL: "https://pay.example.com/inv-1",
			InvoiceID:  "inv-1",
		}, nil)

		w := s.do(t, customerActor, http.MethodPost, "/api/v1/payments/create-subscription", req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "https://pay.example.com/inv-1", body["paymentUrl"])
		assert.Equal(t, "inv-1", body["invoiceId"])
	})

	t.Run("trial already used", func(t *testing.T) {
		s := newTestServer(t)
		s.subscriptions.EXPECT().CreateSubscription(mock.Anything, customerActor, mock.Anything).Return(nil, domain.ErrPlanUnavailable)

		w := s.do(t, customerActor, http.MethodPost, "/api/v1/payments/create-subscription", domain.CheckoutRequest{PlanID: "free_trial", UserEmail: "reader@example.com"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "plan not available", decode(t, w)["error"])
	})

	t.Run("gateway down", func(t *testing.T) {
		s := newTestServer(t)
		s.subscriptions.EXPECT().
			CreateSubscription(mock.Anything, customerActor, mock.Anything).
			Return(nil, fmt.Errorf("create invoice: %w", errors.Join(domain.ErrUpstream, errors.New("dial tcp: timeout"))))

		w := s.do(t, customerActor, http.MethodPost, "/api/v1/payments/create-subscription", domain.CheckoutRequest{PlanID: "monthly", UserEmail: "reader@example.com"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "payment gateway unavailable", decode(t, w)["error"])
	})
}

func TestSubscriptionHandler_VerifyPayment(t *testing.T) {
	t.Run("invoice id required", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, customerActor, http.MethodGet, "/api/v1/payments/verify-payment", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invoice_id_required", decode(t, w)["fields"].(map[string]any)["invoiceId"])
	})

	t.Run("paid", func(t *testing.T) {
		s := newTestServer(t)
		end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		plan := domain.SubscriptionMonthly
		s.subscriptions.EXPECT().VerifyPayment(mock.Anything, customerActor, "inv-1").Return(&domain.PaymentVerification{
			InvoiceID: "inv-1",
			Status:    domain.PaymentStatusPaid,
			Verified:  true,
			Subscription: &domain.Subscription{
				UserID:           customerActor.UserID,
				SubscriptionType: &plan,
				SubscriptionEnd:  &end,
				IsActive:         true,
			},
		}, nil)

		w := s.do(t, customerActor, http.MethodGet, "/api/v1/payments/verify-payment?invoiceId=inv-1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["verified"])
		sub := body["subscription"].(map[string]any)
		assert.Equal(t, "MONTHLY", sub["subscriptionType"])
		assert.Equal(t, "2024-06-01T00:00:00Z", sub["subscriptionEnd"])
		assert.Equal(t, true, sub["isActive"])
	})

	t.Run("still pending", func(t *testing.T) {
		s := newTestServer(t)
		s.subscriptions.EXPECT().VerifyPayment(mock.Anything, customerActor, "inv-2").Return(&domain.PaymentVerification{
			InvoiceID: "inv-2",
			Status:    domain.PaymentStatusPending,
		}, nil)

		w := s.do(t, customerActor, http.MethodGet, "/api/v1/payments/verify-payment?invoiceId=inv-2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["verified"])
		assert.NotContains(t, body, "subscription")
	})

	t.Run("someone else's invoice", func(t *testing.T) {
		s := newTestServer(t)
		s.subscriptions.EXPECT().VerifyPayment(mock.Anything, customerActor, "inv-3").Return(nil, domain.ErrForbidden)

		w := s.do(t, customerActor, http.MethodGet, "/api/v1/payments/verify-payment?invoiceId=inv-3", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSubscriptionHandler_Current(t *testing.T) {
	t.Run("never subscribed", func(t *testing.T) {
		s := newTestServer(t)
		s.subscriptions.EXPECT().Current(mock.Anything, customerActor).Return(nil, nil)

		w := s.do(t, customerActor, http.MethodGet, "/api/v1/user/subscription", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("trial", func(t *testing.T) {
		s := newTestServer(t)
		end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		trial := domain.SubscriptionFreeTrial
		s.subscriptions.EXPECT().Current(mock.Anything, customerActor).Return(&domain.Subscription{
			UserID:           customerActor.UserID,
			SubscriptionType: &trial,
			SubscriptionEnd:  &end,
			IsActive:         true,
			TrialUsed:        true,
		}, nil)

		w := s.do(t, customerActor, http.MethodGet, "/api/v1/user/subscription", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "FREE_TRIAL", body["subscriptionType"])
		assert.Equal(t, true, body["trialUsed"])
	})
}
