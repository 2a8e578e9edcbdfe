package domain

import "time"

// Edition groups articles into one newsletter issue.
type Edition struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishDate   time.Time `json:"publish_date"`
	EditionNumber *int      `json:"edition_number,omitempty"`
	Theme         string    `json:"theme"`
	IsPublished   bool      `json:"is_published"`
	CoverImages   []string  `json:"cover_images"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Articles      []Article `json:"articles,omitempty"`
}

// EditionInput carries the fields an editor supplies when creating an edition.
type EditionInput struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishDate   time.Time `json:"publish_date"`
	EditionNumber *int      `json:"edition_number"`
	Theme         string    `json:"theme"`
	CoverImages   []string  `json:"cover_images"`
}

// EditionFilter narrows edition listings.
type EditionFilter struct {
	Published *bool
	Limit     int
	Offset    int
}
