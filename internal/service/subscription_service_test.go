package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/catalog"
	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/infrastructure/payment"
	"pusaka-newsletter/internal/mocks"
	"pusaka-newsletter/internal/service"
)

var checkoutURLs = service.CheckoutURLs{
	Success: "https://app.example.com/subscription/success",
	Return:  "https://app.example.com/subscription/verify",
}

type subscriptionMocks struct {
	subs     *mocks.MockSubscriptionRepository
	payments *mocks.MockPaymentRepository
	gateway  *mocks.MockPaymentGateway
}

func newSubscriptionService(t *testing.T) (*service.SubscriptionService, subscriptionMocks) {
	t.Helper()
	plans, err := catalog.Default()
	require.NoError(t, err)

	m := subscriptionMocks{
		subs:     mocks.NewMockSubscriptionRepository(t),
		payments: mocks.NewMockPaymentRepository(t),
		gateway:  mocks.NewMockPaymentGateway(t),
	}
	return service.NewSubscriptionService(m.subs, m.payments, m.gateway, plans, checkoutURLs), m
}

func planIDs(plans []domain.Plan) []string {
	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	return ids
}

func TestSubscriptionService_Plans(t *testing.T) {
	ctx := context.Background()

	t.Run("new user sees the free trial", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.subs.EXPECT().Get(mock.Anything, customer.UserID).Return(nil, nil)

		plans, err := svc.Plans(ctx, customer)

		require.NoError(t, err)
		assert.Contains(t, planIDs(plans), domain.FreeTrialPlanID)
	})

	t.Run("trial disappears once used", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.subs.EXPECT().Get(mock.Anything, customer.UserID).Return(&domain.Subscription{TrialUsed: true}, nil)

		plans, err := svc.Plans(ctx, customer)

		require.NoError(t, err)
		assert.NotContains(t, planIDs(plans), domain.FreeTrialPlanID)
		assert.Contains(t, planIDs(plans), "monthly")
	})
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("free trial activates without payment", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.subs.EXPECT().
			ActivateTrial(mock.Anything, customer.UserID, "reader@example.com", mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, _ string, end time.Time, at time.Time) (*domain.Subscription, error) {
				assert.Equal(t, 14*24*time.Hour, end.Sub(at))
				return &domain.Subscription{UserID: customer.UserID, TrialUsed: true, IsActive: true, SubscriptionEnd: &end}, nil
			})

		result, err := svc.CreateSubscription(ctx, customer, domain.CheckoutRequest{
			PlanID:    domain.FreeTrialPlanID,
			UserEmail: "reader@example.com",
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, checkoutURLs.Success, result.PaymentURL)
		assert.Empty(t, result.InvoiceID)
	})

	t.Run("second free trial is refused", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.subs.EXPECT().
			ActivateTrial(mock.Anything, customer.UserID, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrPlanUnavailable)

		_, err := svc.CreateSubscription(ctx, customer, domain.CheckoutRequest{PlanID: domain.FreeTrialPlanID})

		assert.ErrorIs(t, err, domain.ErrPlanUnavailable)
	})

	t.Run("paid plan creates invoice and pending payment", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.gateway.EXPECT().
			CreateInvoice(mock.Anything, mock.MatchedBy(func(req payment.CreateInvoiceRequest) bool {
				return req.Amount == 50000 &&
					req.Currency == "IDR" &&
					req.PayerEmail == customer.Email &&
					req.SuccessRedirectURL == checkoutURLs.Return &&
					req.ExternalID != ""
			})).
			Return(&payment.Invoice{ID: "inv-1", InvoiceURL: "https://pay.example.com/inv-1"}, nil)
		m.payments.EXPECT().
			CreatePayment(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
				return p.InvoiceID == "inv-1" &&
					p.PlanID == "monthly" &&
					p.UserID == customer.UserID &&
					p.Status == domain.PaymentStatusPending
			})).
			Return(nil)

		result, err := svc.CreateSubscription(ctx, customer, domain.CheckoutRequest{PlanID: "monthly"})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "https://pay.example.com/inv-1", result.PaymentURL)
		assert.Equal(t, "inv-1", result.InvoiceID)
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.gateway.EXPECT().CreateInvoice(mock.Anything, mock.Anything).Return(nil, domain.ErrUpstream)

		_, err := svc.CreateSubscription(ctx, customer, domain.CheckoutRequest{PlanID: "quarterly"})

		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("unknown plan", func(t *testing.T) {
		svc, _ := newSubscriptionService(t)

		_, err := svc.CreateSubscription(ctx, customer, domain.CheckoutRequest{PlanID: "lifetime"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "planId")
	})
}

func TestSubscriptionService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.Payment {
		return &domain.Payment{InvoiceID: "inv-1", UserID: customer.UserID, PlanID: "monthly", Status: domain.PaymentStatusPending}
	}

	t.Run("paid invoice activates subscription", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		end := time.Now().Add(30 * 24 * time.Hour)
		monthly := domain.SubscriptionMonthly

		m.payments.EXPECT().GetPayment(mock.Anything, "inv-1").Return(pending(), nil)
		m.gateway.EXPECT().GetInvoice(mock.Anything, "inv-1").Return(&payment.Invoice{ID: "inv-1", Status: domain.PaymentStatusPaid}, nil)
		m.payments.EXPECT().
			CompletePayment(mock.Anything, "inv-1", mock.MatchedBy(func(p domain.Plan) bool { return p.ID == "monthly" }), mock.Anything).
			Return(&domain.Subscription{UserID: customer.UserID, SubscriptionType: &monthly, SubscriptionEnd: &end, IsActive: true}, true, nil)

		result, err := svc.VerifyPayment(ctx, customer, "inv-1")

		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Equal(t, domain.PaymentStatusPaid, result.Status)
		require.NotNil(t, result.Subscription)
		assert.True(t, result.Subscription.IsActive)
	})

	t.Run("already paid does not ask the gateway again", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		end := time.Now().Add(time.Hour)
		paid := pending()
		paid.Status = domain.PaymentStatusPaid

		m.payments.EXPECT().GetPayment(mock.Anything, "inv-1").Return(paid, nil)
		m.subs.EXPECT().Get(mock.Anything, customer.UserID).Return(&domain.Subscription{UserID: customer.UserID, SubscriptionEnd: &end, IsActive: true}, nil)

		result, err := svc.VerifyPayment(ctx, customer, "inv-1")

		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.True(t, result.Subscription.IsActive)
	})

	t.Run("pending invoice is not verified", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.payments.EXPECT().GetPayment(mock.Anything, "inv-1").Return(pending(), nil)
		m.gateway.EXPECT().GetInvoice(mock.Anything, "inv-1").Return(&payment.Invoice{ID: "inv-1", Status: domain.PaymentStatusPending}, nil)

		result, err := svc.VerifyPayment(ctx, customer, "inv-1")

		require.NoError(t, err)
		assert.False(t, result.Verified)
		assert.Equal(t, domain.PaymentStatusPending, result.Status)
	})

	t.Run("expired invoice is recorded", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.payments.EXPECT().GetPayment(mock.Anything, "inv-1").Return(pending(), nil)
		m.gateway.EXPECT().GetInvoice(mock.Anything, "inv-1").Return(&payment.Invoice{ID: "inv-1", Status: domain.PaymentStatusExpired}, nil)
		m.payments.EXPECT().UpdatePaymentStatus(mock.Anything, "inv-1", domain.PaymentStatusExpired, mock.Anything).Return(nil)

		result, err := svc.VerifyPayment(ctx, customer, "inv-1")

		require.NoError(t, err)
		assert.False(t, result.Verified)
		assert.Equal(t, domain.PaymentStatusExpired, result.Status)
	})

	t.Run("other users cannot verify", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.payments.EXPECT().GetPayment(mock.Anything, "inv-1").Return(pending(), nil)

		_, err := svc.VerifyPayment(ctx, domain.Actor{UserID: "someone-else", Role: domain.RoleCustomer}, "inv-1")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.payments.EXPECT().GetPayment(mock.Anything, "inv-x").Return(nil, nil)

		_, err := svc.VerifyPayment(ctx, customer, "inv-x")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("gateway failure", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.payments.EXPECT().GetPayment(mock.Anything, "inv-1").Return(pending(), nil)
		m.gateway.EXPECT().GetInvoice(mock.Anything, "inv-1").Return(nil, domain.ErrUpstream)

		_, err := svc.VerifyPayment(ctx, customer, "inv-1")

		assert.ErrorIs(t, err, domain.ErrUpstream)
	})
}

func TestSubscriptionService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("expired subscription is inactive", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		past := time.Now().Add(-time.Minute)
		m.subs.EXPECT().Get(mock.Anything, customer.UserID).Return(&domain.Subscription{
			UserID:          customer.UserID,
			SubscriptionEnd: &past,
			IsActive:        true,
			TrialUsed:       true,
		}, nil)

		sub, err := svc.Current(ctx, customer)

		require.NoError(t, err)
		assert.False(t, sub.IsActive)
		assert.True(t, sub.TrialUsed)
	})

	t.Run("never subscribed", func(t *testing.T) {
		svc, m := newSubscriptionService(t)
		m.subs.EXPECT().Get(mock.Anything, customer.UserID).Return(nil, nil)

		sub, err := svc.Current(ctx, customer)

		require.NoError(t, err)
		assert.False(t, sub.IsActive)
		assert.Nil(t, sub.SubscriptionEnd)
		assert.False(t, sub.TrialUsed)
	})
}
