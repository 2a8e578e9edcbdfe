package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/service"
	"pusaka-newsletter/internal/validator"
)

// SubscriptionHandler handles plan checkout and subscription status requests.
type SubscriptionHandler struct {
	subscriptions service.SubscriptionServiceInterface
	validator     *validator.Validator
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptions service.SubscriptionServiceInterface, v *validator.Validator) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, validator: v}
}

// SubscriptionResponse is the subscription state shown to the user.
type SubscriptionResponse struct {
	SubscriptionType *string `json:"subscriptionType"`
	SubscriptionEnd  *string `json:"subscriptionEnd"`
	IsActive         bool    `json:"isActive"`
	TrialUsed        bool    `json:"trialUsed"`
}

func toSubscriptionResponse(s *domain.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	resp := &SubscriptionResponse{
		SubscriptionEnd: formatTimePtr(s.SubscriptionEnd),
		IsActive:        s.IsActive,
		TrialUsed:       s.TrialUsed,
	}
	if s.SubscriptionType != nil {
		t := string(*s.SubscriptionType)
		resp.SubscriptionType = &t
	}
	return resp
}

// VerificationResponse is the result of GET /payments/verify-payment.
type VerificationResponse struct {
	InvoiceID    string                `json:"invoiceId"`
	Status       string                `json:"status"`
	Verified     bool                  `json:"verified"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

// Plans handles GET /api/v1/payments/plans
func (h *SubscriptionHandler) Plans(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	plans, err := h.subscriptions.Plans(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plans})
}

// CreateSubscription handles POST /api/v1/payments/create-subscription
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateCheckout(&req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.subscriptions.CreateSubscription(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyPayment handles GET /api/v1/payments/verify-payment?invoiceId=
func (h *SubscriptionHandler) VerifyPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	invoiceID := c.Query("invoiceId")
	if invoiceID == "" {
		respondError(c, domain.NewValidationError("invoiceId", "invoice_id_required"))
		return
	}

	result, err := h.subscriptions.VerifyPayment(c.Request.Context(), actor, invoiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, VerificationResponse{
		InvoiceID:    result.InvoiceID,
		Status:       string(result.Status),
		Verified:     result.Verified,
		Subscription: toSubscriptionResponse(result.Subscription),
	})
}

// Current handles GET /api/v1/user/subscription
func (h *SubscriptionHandler) Current(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	sub, err := h.subscriptions.Current(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}
