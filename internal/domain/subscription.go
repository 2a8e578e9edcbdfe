package domain

import "time"

// SubscriptionType identifies the plan a subscription was bought with.
type SubscriptionType string

const (
	SubscriptionFreeTrial  SubscriptionType = "FREE_TRIAL"
	SubscriptionMonthly    SubscriptionType = "MONTHLY"
	SubscriptionQuarterly  SubscriptionType = "QUARTERLY"
	SubscriptionHalfYearly SubscriptionType = "HALF_YEARLY"
	SubscriptionAnnually   SubscriptionType = "ANNUALLY"
)

// FreeTrialPlanID is the catalog id of the one-time trial plan.
const FreeTrialPlanID = "free_trial"

// Plan is an entry of the static plan catalog.
type Plan struct {
	ID               string           `json:"id" yaml:"id"`
	Name             string           `json:"name" yaml:"name"`
	SubscriptionType SubscriptionType `json:"subscription_type" yaml:"subscription_type"`
	Price            int64            `json:"price" yaml:"price"`
	Currency         string           `json:"currency" yaml:"currency"`
	DurationDays     int              `json:"duration_days" yaml:"duration_days"`
	Features         []string         `json:"features" yaml:"features"`
}

// Subscription is the subscription state of one user.
type Subscription struct {
	UserID           string            `json:"user_id"`
	Email            string            `json:"email"`
	SubscriptionType *SubscriptionType `json:"subscription_type"`
	SubscriptionEnd  *time.Time        `json:"subscription_end"`
	IsActive         bool              `json:"is_active"`
	TrialUsed        bool              `json:"trial_used"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ActiveAt reports whether the subscription grants access at t.
func (s *Subscription) ActiveAt(t time.Time) bool {
	return s != nil && s.IsActive && s.SubscriptionEnd != nil && s.SubscriptionEnd.After(t)
}

// PaymentStatus is the state of an invoice at the payment gateway.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment tracks one checkout attempt.
type Payment struct {
	InvoiceID  string        `json:"invoice_id"`
	UserID     string        `json:"user_id"`
	Email      string        `json:"email"`
	PlanID     string        `json:"plan_id"`
	Amount     int64         `json:"amount"`
	Currency   string        `json:"currency"`
	Status     PaymentStatus `json:"status"`
	PaymentURL string        `json:"payment_url"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
}

// CheckoutResult is returned when a plan is selected.
type CheckoutResult struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"paymentUrl"`
	InvoiceID  string `json:"invoiceId,omitempty"`
}

// PaymentVerification is returned after the user is redirected back from the gateway.
type PaymentVerification struct {
	InvoiceID    string        `json:"invoiceId"`
	Status       PaymentStatus `json:"status"`
	Verified     bool          `json:"verified"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// CheckoutRequest selects a plan for the authenticated user.
type CheckoutRequest struct {
	PlanID    string `json:"planId"`
	UserEmail string `json:"userEmail"`
}
