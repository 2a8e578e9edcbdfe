package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pusaka-newsletter/internal/catalog"
	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/infrastructure/payment"
	"pusaka-newsletter/internal/logger"
	"pusaka-newsletter/internal/metrics"
	"pusaka-newsletter/internal/repository"
)

// CheckoutURLs are the front-end pages the user lands on after checkout.
type CheckoutURLs struct {
	// Success is returned directly when no payment is needed.
	Success string
	// Return is where the gateway sends the user after paying or cancelling.
	Return string
}

// SubscriptionService handles plan selection, checkout and payment verification.
type SubscriptionService struct {
	subs     repository.SubscriptionRepository
	payments repository.PaymentRepository
	gateway  PaymentGateway
	plans    *catalog.Catalog
	urls     CheckoutURLs
	now      func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	payments repository.PaymentRepository,
	gateway PaymentGateway,
	plans *catalog.Catalog,
	urls CheckoutURLs,
) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		payments: payments,
		gateway:  gateway,
		plans:    plans,
		urls:     urls,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Plans returns the plans actor may choose. The free trial disappears once used.
func (s *SubscriptionService) Plans(ctx context.Context, actor domain.Actor) ([]domain.Plan, error) {
	sub, err := s.subs.Get(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s.plans.Available(sub != nil && sub.TrialUsed), nil
}

// CreateSubscription starts a checkout for the requested plan. The free trial is
// activated at once; paid plans return the gateway's payment URL.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, actor domain.Actor, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	plan, ok := s.plans.Lookup(req.PlanID)
	if !ok {
		return nil, domain.NewValidationError("planId", "unknown_plan")
	}

	email := strings.TrimSpace(req.UserEmail)
	if email == "" {
		email = actor.Email
	}
	log := logger.WithActor(actor).With(slog.String("plan_id", plan.ID))

	if plan.ID == domain.FreeTrialPlanID {
		now := s.now()
		end := now.AddDate(0, 0, plan.DurationDays)
		if _, err := s.subs.ActivateTrial(ctx, actor.UserID, email, end, now); err != nil {
			return nil, fmt.Errorf("activate trial: %w", err)
		}
		metrics.ObserveSubscriptionActivation(plan.ID)
		log.InfoContext(ctx, "Free trial activated", slog.Time("subscription_end", end))
		return &domain.CheckoutResult{Success: true, PaymentURL: s.urls.Success}, nil
	}

	invoice, err := s.gateway.CreateInvoice(ctx, payment.CreateInvoiceRequest{
		ExternalID:         uuid.NewString(),
		Amount:             plan.Price,
		Currency:           plan.Currency,
		PayerEmail:         email,
		Description:        plan.Name,
		SuccessRedirectURL: s.urls.Return,
		FailureRedirectURL: s.urls.Return,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to create invoice", slog.String("error", err.Error()))
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	now := s.now()
	p := &domain.Payment{
		InvoiceID:  invoice.ID,
		UserID:     actor.UserID,
		Email:      email,
		PlanID:     plan.ID,
		Amount:     plan.Price,
		Currency:   plan.Currency,
		Status:     domain.PaymentStatusPending,
		PaymentURL: invoice.InvoiceURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.payments.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	log.InfoContext(ctx, "Invoice created", slog.String("invoice_id", invoice.ID))
	return &domain.CheckoutResult{Success: true, PaymentURL: invoice.InvoiceURL, InvoiceID: invoice.ID}, nil
}

// VerifyPayment reconciles a payment with the gateway. A PAID invoice extends the
// subscription exactly once, however often it is verified.
func (s *SubscriptionService) VerifyPayment(ctx context.Context, actor domain.Actor, invoiceID string) (*domain.PaymentVerification, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return nil, domain.NewValidationError("invoiceId", "invoice_id_required")
	}

	p, err := s.payments.GetPayment(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("payment %s: %w", invoiceID, domain.ErrNotFound)
	}
	if p.UserID != actor.UserID && actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: payment belongs to another user", domain.ErrForbidden)
	}

	if p.Status == domain.PaymentStatusPaid {
		sub, err := s.current(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		return &domain.PaymentVerification{InvoiceID: invoiceID, Status: p.Status, Verified: true, Subscription: sub}, nil
	}

	invoice, err := s.gateway.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	log := logger.WithActor(actor).With(slog.String("invoice_id", invoiceID))
	now := s.now()

	switch invoice.Status {
	case domain.PaymentStatusPaid:
		plan, ok := s.plans.Lookup(p.PlanID)
		if !ok {
			return nil, fmt.Errorf("payment %s references unknown plan %q", invoiceID, p.PlanID)
		}
		sub, applied, err := s.payments.CompletePayment(ctx, invoiceID, plan, now)
		if err != nil {
			return nil, fmt.Errorf("complete payment: %w", err)
		}
		if sub != nil {
			sub.IsActive = sub.ActiveAt(now)
		}
		if applied {
			metrics.ObserveSubscriptionActivation(plan.ID)
			log.InfoContext(ctx, "Subscription activated", slog.String("plan_id", plan.ID))
		}
		return &domain.PaymentVerification{InvoiceID: invoiceID, Status: domain.PaymentStatusPaid, Verified: true, Subscription: sub}, nil

	case domain.PaymentStatusPending:
		return &domain.PaymentVerification{InvoiceID: invoiceID, Status: domain.PaymentStatusPending}, nil

	default:
		if err := s.payments.UpdatePaymentStatus(ctx, invoiceID, invoice.Status, now); err != nil {
			return nil, fmt.Errorf("update payment status: %w", err)
		}
		log.WarnContext(ctx, "Payment not completed", slog.String("status", string(invoice.Status)))
		return &domain.PaymentVerification{InvoiceID: invoiceID, Status: invoice.Status}, nil
	}
}

// Current returns actor's subscription. A user who never subscribed gets an inactive one.
func (s *SubscriptionService) Current(ctx context.Context, actor domain.Actor) (*domain.Subscription, error) {
	sub, err := s.current(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return &domain.Subscription{UserID: actor.UserID, Email: actor.Email}, nil
	}
	return sub, nil
}

func (s *SubscriptionService) current(ctx context.Context, userID string) (*domain.Subscription, error) {
	sub, err := s.subs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	if sub != nil {
		sub.IsActive = sub.ActiveAt(s.now())
	}
	return sub, nil
}
