package repository

import (
	"context"
	"time"

	"pusaka-newsletter/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	// Update writes the editable fields and status of article if the stored
	// version still equals article.Version.
	Update(ctx context.Context, article *domain.Article) error
	// Transition applies a status change and its review note in one transaction.
	Transition(ctx context.Context, t domain.ArticleTransition) (*domain.Article, error)
	Delete(ctx context.Context, id string, version int) error
	ListReviews(ctx context.Context, articleID string) ([]domain.ReviewNote, error)
	StreamAll(ctx context.Context, filter domain.ArticleFilter, callback func(domain.Article) error) error
}

// BlogRepository defines methods for blog data access.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, int, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id string) error
}

// EditionRepository defines methods for edition data access.
type EditionRepository interface {
	Create(ctx context.Context, edition *domain.Edition) error
	GetByID(ctx context.Context, id string) (*domain.Edition, error)
	List(ctx context.Context, filter domain.EditionFilter) ([]domain.Edition, int, error)
	SetPublished(ctx context.Context, id string, published bool, at time.Time) (*domain.Edition, error)
}

// SubscriptionRepository defines methods for subscription data access.
type SubscriptionRepository interface {
	Get(ctx context.Context, userID string) (*domain.Subscription, error)
	// ActivateTrial starts the one-time trial. Returns domain.ErrPlanUnavailable
	// when the user already used it.
	ActivateTrial(ctx context.Context, userID, email string, end, at time.Time) (*domain.Subscription, error)
}

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	GetPayment(ctx context.Context, invoiceID string) (*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, at time.Time) error
	// CompletePayment marks a payment PAID and extends the owner's subscription by the
	// plan duration. It reports false when the payment was already PAID.
	CompletePayment(ctx context.Context, invoiceID string, plan domain.Plan, at time.Time) (*domain.Subscription, bool, error)
}
