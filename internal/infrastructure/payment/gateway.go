// Package payment is a client for the external invoice-based payment gateway.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/metrics"
)

const maxErrorBody = 4 << 10

// CreateInvoiceRequest describes the invoice the user is redirected to.
type CreateInvoiceRequest struct {
	ExternalID         string `json:"external_id"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	PayerEmail         string `json:"payer_email"`
	Description        string `json:"description"`
	SuccessRedirectURL string `json:"success_redirect_url,omitempty"`
	FailureRedirectURL string `json:"failure_redirect_url,omitempty"`
}

// Invoice is the gateway's view of an invoice.
type Invoice struct {
	ID         string               `json:"id"`
	ExternalID string               `json:"external_id"`
	Status     domain.PaymentStatus `json:"-"`
	RawStatus  string               `json:"status"`
	InvoiceURL string               `json:"invoice_url"`
	Amount     int64                `json:"amount"`
}

// Client talks JSON over HTTP to the gateway. Calls are never retried.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a gateway client. The API key is sent as the basic auth user.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateInvoice creates an invoice and returns its payment URL.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal invoice request: %w", err)
	}

	var inv Invoice
	if err := c.do(ctx, "create_invoice", http.MethodPost, "/v2/invoices", body, &inv); err != nil {
		return nil, err
	}
	if inv.ID == "" || inv.InvoiceURL == "" {
		return nil, fmt.Errorf("create invoice: incomplete response: %w", domain.ErrUpstream)
	}
	return &inv, nil
}

// GetInvoice fetches the current state of an invoice.
func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	if err := c.do(ctx, "get_invoice", http.MethodGet, "/v2/invoices/"+url.PathEscape(id), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body []byte, out *Invoice) error {
	timer := metrics.NewTimer()
	result := "error"
	defer func() { metrics.ObservePaymentCall(operation, result, timer.Seconds()) }()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", operation, err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		result = "not_found"
		return fmt.Errorf("%s: invoice not found: %w", operation, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s: gateway returned %d: %s: %w",
			operation, resp.StatusCode, strings.TrimSpace(string(msg)), domain.ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %v: %w", operation, err, domain.ErrUpstream)
	}
	status, err := mapStatus(out.RawStatus)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", operation, err, domain.ErrUpstream)
	}
	out.Status = status

	result = "success"
	return nil
}

var errUnknownStatus = errors.New("unknown invoice status")

func mapStatus(raw string) (domain.PaymentStatus, error) {
	switch strings.ToUpper(raw) {
	case "PENDING":
		return domain.PaymentStatusPending, nil
	case "PAID", "SETTLED":
		return domain.PaymentStatusPaid, nil
	case "EXPIRED":
		return domain.PaymentStatusExpired, nil
	case "FAILED":
		return domain.PaymentStatusFailed, nil
	default:
		return "", fmt.Errorf("%w %q", errUnknownStatus, raw)
	}
}
