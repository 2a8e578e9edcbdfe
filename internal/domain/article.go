package domain

import "time"

// ArticleStatus is the editorial state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft       ArticleStatus = "DRAFT"
	ArticleStatusUnderReview ArticleStatus = "UNDER_REVIEW"
	ArticleStatusApproved    ArticleStatus = "APPROVED"
	ArticleStatusPublished   ArticleStatus = "PUBLISHED"
	ArticleStatusRejected    ArticleStatus = "REJECTED"
	ArticleStatusArchived    ArticleStatus = "ARCHIVED"
)

// Article represents an article entity in the system.
type Article struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	Excerpt         string        `json:"excerpt"`
	Slug            string        `json:"slug"`
	Status          ArticleStatus `json:"status"`
	Featured        bool          `json:"featured"`
	ReadTime        int           `json:"read_time"`
	MetaTitle       *string       `json:"meta_title,omitempty"`
	MetaDescription *string       `json:"meta_description,omitempty"`
	EditionID       *string       `json:"edition_id,omitempty"`
	AuthorID        string        `json:"author_id"`
	Version         int           `json:"version"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	PublishedAt     *time.Time    `json:"published_at,omitempty"`
}

// ArticleInput carries the author-editable fields of an article.
type ArticleInput struct {
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	Excerpt         string  `json:"excerpt"`
	Slug            string  `json:"slug"`
	Featured        bool    `json:"featured"`
	ReadTime        int     `json:"read_time"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	EditionID       *string `json:"edition_id"`
}

// ArticleFilter narrows article listings. Zero values mean "any".
type ArticleFilter struct {
	Status    ArticleStatus
	AuthorID  string
	EditionID string
	Featured  *bool
	Limit     int
	Offset    int
}

// ArticleTransition is a status change to apply atomically. The stored article must
// still be in From at Version, otherwise the change is rejected with ErrConflict.
type ArticleTransition struct {
	ArticleID string
	From      ArticleStatus
	To        ArticleStatus
	Version   int
	// PublishedAt is written only when the stored value is NULL.
	PublishedAt *time.Time
	Review      *ReviewNote
	At          time.Time
}

// ValidArticleStatuses contains all valid article statuses.
var ValidArticleStatuses = []ArticleStatus{
	ArticleStatusDraft,
	ArticleStatusUnderReview,
	ArticleStatusApproved,
	ArticleStatusPublished,
	ArticleStatusRejected,
	ArticleStatusArchived,
}

// IsValidArticleStatus checks if a status is valid.
func IsValidArticleStatus(status string) bool {
	for _, s := range ValidArticleStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
