package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/middleware"
	"pusaka-newsletter/internal/service"
	"pusaka-newsletter/internal/validator"
)

// BlogHandler handles blog requests. Anonymous readers only see published blogs.
type BlogHandler struct {
	blogs     service.BlogServiceInterface
	validator *validator.Validator
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogs service.BlogServiceInterface, v *validator.Validator) *BlogHandler {
	return &BlogHandler{blogs: blogs, validator: v}
}

// BlogQuery holds the filters of GET /blogs.
type BlogQuery struct {
	PageQuery
	Status string `form:"status"`
	Tag    string `form:"tag"`
}

// BlogResponse represents a blog in API responses.
type BlogResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Content     string   `json:"content,omitempty"`
	HTML        string   `json:"html,omitempty"`
	Excerpt     string   `json:"excerpt"`
	ContentType string   `json:"content_type"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	AuthorID    string   `json:"author_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	PublishedAt *string  `json:"published_at,omitempty"`
}

func toBlogResponse(b *domain.Blog) BlogResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogResponse{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		ContentType: b.ContentType,
		Tags:        tags,
		Status:      string(b.Status),
		AuthorID:    b.AuthorID,
		CreatedAt:   b.CreatedAt.Format(TimeFormat),
		UpdatedAt:   b.UpdatedAt.Format(TimeFormat),
		PublishedAt: formatTimePtr(b.PublishedAt),
	}
}

func (h *BlogHandler) toFullResponse(b *domain.Blog) BlogResponse {
	resp := toBlogResponse(b)
	resp.Content = b.Content
	resp.HTML = h.blogs.Render(b)
	return resp
}

// isStaff reports whether the optional caller may see unpublished blogs.
func isStaff(c *gin.Context) bool {
	actor, ok := middleware.GetActor(c)
	return ok && actor.Role.IsStaff()
}

// List handles GET /api/v1/blogs
func (h *BlogHandler) List(c *gin.Context) {
	var q BlogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err)
		return
	}
	if q.Status != "" && !domain.IsValidBlogStatus(q.Status) {
		respondError(c, domain.NewValidationError("status", "invalid_status"))
		return
	}
	q.PageQuery = q.PageQuery.normalize()

	blogs, total, err := h.blogs.List(c.Request.Context(), domain.BlogFilter{
		Status: domain.BlogStatus(q.Status),
		Tag:    q.Tag,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, isStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]BlogResponse, len(blogs))
	for i := range blogs {
		data[i] = toBlogResponse(&blogs[i])
	}
	c.JSON(http.StatusOK, ListResponse[BlogResponse]{Data: data, Total: total, Limit: q.Limit, Offset: q.Offset})
}

// Get handles GET /api/v1/blogs/:slug
func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.blogs.GetBySlug(c.Request.Context(), c.Param("slug"), isStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toFullResponse(blog))
}

// Create handles POST /api/v1/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var in domain.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateBlogInput(&in, true); err != nil {
		respondError(c, err)
		return
	}

	blog, err := h.blogs.Create(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toFullResponse(blog))
}

// Update handles PUT /api/v1/blogs/:slug
func (h *BlogHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var in domain.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateBlogInput(&in, false); err != nil {
		respondError(c, err)
		return
	}

	blog, err := h.blogs.Update(c.Request.Context(), actor, c.Param("slug"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toFullResponse(blog))
}

// Delete handles DELETE /api/v1/blogs/:slug?confirm=true
func (h *BlogHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if err := h.blogs.Delete(c.Request.Context(), actor, c.Param("slug"), confirmed); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
