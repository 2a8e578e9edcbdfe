package service

import (
	"context"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/infrastructure/payment"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// PaymentGateway creates and inspects invoices at the external payment provider.
type PaymentGateway interface {
	CreateInvoice(ctx context.Context, req payment.CreateInvoiceRequest) (*payment.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*payment.Invoice, error)
}

// ArticleServiceInterface defines the interface for the editorial workflow.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Create stores a new DRAFT article authored by actor.
	Create(ctx context.Context, actor domain.Actor, in domain.ArticleInput) (*domain.Article, error)
	// Update edits the content of a DRAFT or REJECTED article. version 0 skips the version check.
	Update(ctx context.Context, actor domain.Actor, id string, in domain.ArticleInput, version int) (*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	// UpdateStatus moves an article to target if actor's role allows it.
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, target domain.ArticleStatus, version int) (*domain.Article, error)
	// Review records a publisher decision on an article under review.
	Review(ctx context.Context, actor domain.Actor, id string, in domain.ReviewInput, version int) (*domain.Article, error)
	Archive(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error)
	Unarchive(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Reviews(ctx context.Context, id string) ([]domain.ReviewNote, error)
}

// BlogServiceInterface defines the interface for blog operations.
type BlogServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, in domain.BlogInput) (*domain.Blog, error)
	// GetBySlug hides unpublished blogs unless includeUnpublished is set.
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*domain.Blog, error)
	List(ctx context.Context, filter domain.BlogFilter, includeUnpublished bool) ([]domain.Blog, int, error)
	Update(ctx context.Context, actor domain.Actor, slug string, in domain.BlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, actor domain.Actor, slug string, confirmed bool) error
	// Render returns the blog body as HTML.
	Render(blog *domain.Blog) string
}

// EditionServiceInterface defines the interface for edition operations.
type EditionServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, in domain.EditionInput) (*domain.Edition, error)
	List(ctx context.Context, filter domain.EditionFilter) ([]domain.Edition, int, error)
	// Get returns the edition together with its articles.
	Get(ctx context.Context, id string) (*domain.Edition, error)
	SetPublished(ctx context.Context, actor domain.Actor, id string, published bool) (*domain.Edition, error)
}

// SubscriptionServiceInterface defines the interface for plan selection and payments.
type SubscriptionServiceInterface interface {
	Plans(ctx context.Context, actor domain.Actor) ([]domain.Plan, error)
	CreateSubscription(ctx context.Context, actor domain.Actor, req domain.CheckoutRequest) (*domain.CheckoutResult, error)
	VerifyPayment(ctx context.Context, actor domain.Actor, invoiceID string) (*domain.PaymentVerification, error)
	Current(ctx context.Context, actor domain.Actor) (*domain.Subscription, error)
}

// ExportServiceInterface defines the interface for export operations.
type ExportServiceInterface interface {
	// StreamArticles streams articles matching filter directly to the writer.
	StreamArticles(ctx context.Context, filter domain.ArticleFilter, format string, writer StreamWriter) (int, error)
}

// FeedServiceInterface defines the interface for the public feed.
type FeedServiceInterface interface {
	// Render returns the feed of the latest published articles as RSS or Atom.
	Render(ctx context.Context, format string) (string, error)
}
