package domain

import "time"

// ReviewDecision is the outcome a publisher records for an article under review.
type ReviewDecision string

const (
	ReviewDecisionApproved ReviewDecision = "APPROVED"
	ReviewDecisionRejected ReviewDecision = "REJECTED"
)

// Highlight marks a passage of the article the reviewer commented on.
type Highlight struct {
	SelectedText string  `json:"selectedText"`
	Comment      *string `json:"comment,omitempty"`
}

// ReviewNote is an immutable record of one publisher decision.
type ReviewNote struct {
	ID         string         `json:"id"`
	ArticleID  string         `json:"article_id"`
	ReviewerID string         `json:"reviewer_id"`
	Decision   ReviewDecision `json:"decision"`
	Note       string         `json:"note"`
	Highlights []Highlight    `json:"highlights"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Status returns the article status a decision leads to.
func (d ReviewDecision) Status() ArticleStatus {
	if d == ReviewDecisionApproved {
		return ArticleStatusApproved
	}
	return ArticleStatusRejected
}

// IsValidReviewDecision checks if a decision is valid.
func IsValidReviewDecision(decision string) bool {
	return decision == string(ReviewDecisionApproved) || decision == string(ReviewDecisionRejected)
}

// ReviewInput is a publisher's decision on an article under review.
type ReviewInput struct {
	Decision   ReviewDecision `json:"decision"`
	Note       string         `json:"note"`
	Highlights []Highlight    `json:"highlights"`
}
