package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pusaka-newsletter/internal/domain"
)

const subscriptionColumns = `user_id, email, subscription_type, subscription_end, is_active, trial_used, updated_at`

// PostgresSubscriptionRepository implements SubscriptionRepository and
// PaymentRepository using PostgreSQL.
type PostgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository.
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var s domain.Subscription
	if err := row.Scan(&s.UserID, &s.Email, &s.SubscriptionType, &s.SubscriptionEnd, &s.IsActive, &s.TrialUsed, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Get retrieves the subscription of a user.
func (r *PostgresSubscriptionRepository) Get(ctx context.Context, userID string) (*domain.Subscription, error) {
	s, err := scanSubscription(r.pool.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

// ActivateTrial starts the free trial unless the user already used it. An
// active paid subscription keeps its type and is never shortened.
func (r *PostgresSubscriptionRepository) ActivateTrial(ctx context.Context, userID, email string, end, at time.Time) (*domain.Subscription, error) {
	s, err := scanSubscription(r.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (user_id, email, subscription_type, subscription_end, is_active, trial_used, updated_at)
		VALUES ($1, $2, $3, $4::timestamptz, TRUE, TRUE, $5::timestamptz)
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			subscription_type = CASE
				WHEN subscriptions.is_active AND subscriptions.subscription_end > $5::timestamptz
				THEN subscriptions.subscription_type
				ELSE EXCLUDED.subscription_type
			END,
			subscription_end = GREATEST(COALESCE(subscriptions.subscription_end, $4::timestamptz), $4::timestamptz),
			is_active = TRUE,
			trial_used = TRUE,
			updated_at = EXCLUDED.updated_at
		WHERE subscriptions.trial_used = FALSE
		RETURNING `+subscriptionColumns,
		userID, email, domain.SubscriptionFreeTrial, end, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("activate trial for %s: %w", userID, domain.ErrPlanUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("activate trial: %w", err)
	}
	return s, nil
}

// CreatePayment inserts a new payment.
func (r *PostgresSubscriptionRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (invoice_id, user_id, email, plan_id, amount, currency, status, payment_url,
			created_at, updated_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.InvoiceID, p.UserID, p.Email, p.PlanID, p.Amount, p.Currency, p.Status, p.PaymentURL,
		p.CreatedAt, p.UpdatedAt, p.PaidAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert payment: invoice %s already recorded: %w", p.InvoiceID, domain.ErrConflict)
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetPayment retrieves a payment by invoice ID.
func (r *PostgresSubscriptionRepository) GetPayment(ctx context.Context, invoiceID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.pool.QueryRow(ctx, `
		SELECT invoice_id, user_id, email, plan_id, amount, currency, status, payment_url, created_at, updated_at, paid_at
		FROM payments
		WHERE invoice_id = $1
	`, invoiceID).Scan(&p.InvoiceID, &p.UserID, &p.Email, &p.PlanID, &p.Amount, &p.Currency, &p.Status, &p.PaymentURL,
		&p.CreatedAt, &p.UpdatedAt, &p.PaidAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// UpdatePaymentStatus records a gateway status other than PAID. A PAID payment is left untouched.
func (r *PostgresSubscriptionRepository) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE payments SET status = $2, updated_at = $3
		WHERE invoice_id = $1 AND status <> $4
	`, invoiceID, status, at, domain.PaymentStatusPaid)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

// CompletePayment marks the payment PAID and extends the subscription from
// max(at, current end) by the plan duration, in one transaction.
func (r *PostgresSubscriptionRepository) CompletePayment(ctx context.Context, invoiceID string, plan domain.Plan, at time.Time) (*domain.Subscription, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID, email string
	var status domain.PaymentStatus
	err = tx.QueryRow(ctx, `SELECT user_id, email, status FROM payments WHERE invoice_id = $1 FOR UPDATE`, invoiceID).
		Scan(&userID, &email, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("lock payment %s: %w", invoiceID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, false, fmt.Errorf("lock payment: %w", err)
	}

	if status == domain.PaymentStatusPaid {
		s, err := scanSubscription(tx.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1`, userID))
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, fmt.Errorf("get subscription: %w", err)
		}
		return s, false, nil
	}

	if _, err := tx.Exec(ctx, `
		UPDATE payments SET status = $2, paid_at = $3, updated_at = $3 WHERE invoice_id = $1
	`, invoiceID, domain.PaymentStatusPaid, at); err != nil {
		return nil, false, fmt.Errorf("mark payment paid: %w", err)
	}

	s, err := scanSubscription(tx.QueryRow(ctx, `
		INSERT INTO subscriptions (user_id, email, subscription_type, subscription_end, is_active, trial_used, updated_at)
		VALUES ($1, $2, $3, $4::timestamptz + make_interval(days => $5::int), TRUE, FALSE, $4::timestamptz)
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			subscription_type = EXCLUDED.subscription_type,
			subscription_end = GREATEST(COALESCE(subscriptions.subscription_end, $4::timestamptz), $4::timestamptz)
				+ make_interval(days => $5::int),
			is_active = TRUE,
			updated_at = EXCLUDED.updated_at
		RETURNING `+subscriptionColumns,
		userID, email, plan.SubscriptionType, at, plan.DurationDays))
	if err != nil {
		return nil, false, fmt.Errorf("extend subscription: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit transaction: %w", err)
	}
	return s, true, nil
}
