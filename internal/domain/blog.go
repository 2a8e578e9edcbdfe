package domain

import "time"

// BlogStatus is the state of a blog post. Blogs have no review step.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "DRAFT"
	BlogStatusPublished BlogStatus = "PUBLISHED"
	BlogStatusArchived  BlogStatus = "ARCHIVED"
)

// Content types a blog body can be stored in.
const (
	ContentTypeHTML     = "html"
	ContentTypeMarkdown = "markdown"
)

// Blog represents a blog post.
type Blog struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	ContentType string     `json:"content_type"`
	Tags        []string   `json:"tags"`
	Status      BlogStatus `json:"status"`
	AuthorID    string     `json:"author_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// BlogInput carries the editable fields of a blog. Nil pointers leave a field unchanged on update.
type BlogInput struct {
	Title       *string     `json:"title"`
	Slug        *string     `json:"slug"`
	Content     *string     `json:"content"`
	Excerpt     *string     `json:"excerpt"`
	ContentType *string     `json:"content_type"`
	Tags        []string    `json:"tags"`
	Status      *BlogStatus `json:"status"`
}

// ValidBlogStatuses contains all valid blog statuses.
var ValidBlogStatuses = []BlogStatus{BlogStatusDraft, BlogStatusPublished, BlogStatusArchived}

// IsValidBlogStatus checks if a status is valid.
func IsValidBlogStatus(status string) bool {
	for _, s := range ValidBlogStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// BlogFilter narrows blog listings. An empty Status means any status.
type BlogFilter struct {
	Status BlogStatus
	Tag    string
	Limit  int
	Offset int
}
