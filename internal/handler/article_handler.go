package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/service"
	"pusaka-newsletter/internal/validator"
	"pusaka-newsletter/internal/workflow"
)

// ArticleHandler handles article requests for the public site, the editorial
// dashboard and the publisher review queue.
type ArticleHandler struct {
	articles  service.ArticleServiceInterface
	validator *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface, v *validator.Validator) *ArticleHandler {
	return &ArticleHandler{articles: articles, validator: v}
}

// ArticleRequest is the body of article create and update requests.
type ArticleRequest struct {
	domain.ArticleInput
	Version int `json:"version"`
}

// StatusRequest is the body of PATCH /editorial/articles/:id/status.
type StatusRequest struct {
	Status  string `json:"status"`
	Version int    `json:"version"`
}

// VersionRequest is the optional body of archive and unarchive requests.
type VersionRequest struct {
	Version int `json:"version"`
}

// ReviewRequest is the body of POST /publisher/articles/:id/review.
type ReviewRequest struct {
	domain.ReviewInput
	Version int `json:"version"`
}

// ArticleQuery holds the filters of article list endpoints.
type ArticleQuery struct {
	PageQuery
	Status    string `form:"status"`
	AuthorID  string `form:"author_id"`
	EditionID string `form:"edition_id" binding:"omitempty,uuid"`
	Featured  *bool  `form:"featured"`
}

// ArticleResponse represents an article in API responses.
type ArticleResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Content          string   `json:"content,omitempty"`
	Excerpt          string   `json:"excerpt"`
	Slug             string   `json:"slug"`
	Status           string   `json:"status"`
	Featured         bool     `json:"featured"`
	ReadTime         int      `json:"read_time"`
	MetaTitle        *string  `json:"meta_title,omitempty"`
	MetaDescription  *string  `json:"meta_description,omitempty"`
	EditionID        *string  `json:"edition_id,omitempty"`
	AuthorID         string   `json:"author_id"`
	Version          int      `json:"version"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
	PublishedAt      *string  `json:"published_at,omitempty"`
	AvailableActions []string `json:"available_actions,omitempty"`
}

// ReviewNoteResponse represents a review note in API responses.
type ReviewNoteResponse struct {
	ID         string             `json:"id"`
	ArticleID  string             `json:"article_id"`
	ReviewerID string             `json:"reviewer_id"`
	Decision   string             `json:"decision"`
	Note       string             `json:"note"`
	Highlights []domain.Highlight `json:"highlights"`
	CreatedAt  string             `json:"created_at"`
}

func toArticleResponse(a *domain.Article, withContent bool) ArticleResponse {
	resp := ArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Excerpt:         a.Excerpt,
		Slug:            a.Slug,
		Status:          string(a.Status),
		Featured:        a.Featured,
		ReadTime:        a.ReadTime,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		EditionID:       a.EditionID,
		AuthorID:        a.AuthorID,
		Version:         a.Version,
		CreatedAt:       a.CreatedAt.Format(TimeFormat),
		UpdatedAt:       a.UpdatedAt.Format(TimeFormat),
		PublishedAt:     formatTimePtr(a.PublishedAt),
	}
	if withContent {
		resp.Content = a.Content
	}
	return resp
}

// toEditorialResponse adds the status changes the actor may make next.
func toEditorialResponse(a *domain.Article, actor domain.Actor) ArticleResponse {
	resp := toArticleResponse(a, true)
	for _, s := range workflow.AllowedArticleTargets(a.Status, actor.Role) {
		if s == a.Status {
			continue
		}
		if workflow.AuthorizeArticle(a, s, actor) == nil {
			resp.AvailableActions = append(resp.AvailableActions, string(s))
		}
	}
	return resp
}

func toArticleList(articles []domain.Article, total int, page PageQuery) ListResponse[ArticleResponse] {
	data := make([]ArticleResponse, len(articles))
	for i := range articles {
		data[i] = toArticleResponse(&articles[i], false)
	}
	return ListResponse[ArticleResponse]{Data: data, Total: total, Limit: page.Limit, Offset: page.Offset}
}

func bindArticleQuery(c *gin.Context) (ArticleQuery, domain.ArticleFilter, bool) {
	var q ArticleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err)
		return q, domain.ArticleFilter{}, false
	}
	if q.Status != "" && !domain.IsValidArticleStatus(q.Status) {
		respondError(c, domain.NewValidationError("status", "invalid_status"))
		return q, domain.ArticleFilter{}, false
	}
	q.PageQuery = q.PageQuery.normalize()
	return q, domain.ArticleFilter{
		Status:    domain.ArticleStatus(q.Status),
		AuthorID:  q.AuthorID,
		EditionID: q.EditionID,
		Featured:  q.Featured,
		Limit:     q.Limit,
		Offset:    q.Offset,
	}, true
}

// ListPublished handles GET /api/v1/articles
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	q, filter, ok := bindArticleQuery(c)
	if !ok {
		return
	}
	filter.Status = domain.ArticleStatusPublished
	filter.AuthorID = ""

	articles, total, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleList(articles, total, q.PageQuery))
}

// GetPublished handles GET /api/v1/articles/:slug
func (h *ArticleHandler) GetPublished(c *gin.Context) {
	article, err := h.articles.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article, true))
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateArticleInput(&req.ArticleInput); err != nil {
		respondError(c, err)
		return
	}

	article, err := h.articles.Create(c.Request.Context(), actor, req.ArticleInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEditorialResponse(article, actor))
}

// ListEditorial handles GET /api/v1/editorial/articles
func (h *ArticleHandler) ListEditorial(c *gin.Context) {
	q, filter, ok := bindArticleQuery(c)
	if !ok {
		return
	}

	articles, total, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleList(articles, total, q.PageQuery))
}

// GetEditorial handles GET /api/v1/editorial/articles/:id
func (h *ArticleHandler) GetEditorial(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditorialResponse(article, actor))
}

// Update handles PUT /api/v1/editorial/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateArticleInput(&req.ArticleInput); err != nil {
		respondError(c, err)
		return
	}

	article, err := h.articles.Update(c.Request.Context(), actor, id, req.ArticleInput, req.Version)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditorialResponse(article, actor))
}

// UpdateStatus handles PATCH /api/v1/editorial/articles/:id/status
func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateArticleStatus(req.Status); err != nil {
		respondError(c, err)
		return
	}

	article, err := h.articles.UpdateStatus(c.Request.Context(), actor, id, domain.ArticleStatus(req.Status), req.Version)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditorialResponse(article, actor))
}

// Archive handles PATCH /api/v1/editorial/articles/:id/archive
func (h *ArticleHandler) Archive(c *gin.Context) {
	h.changeArchived(c, h.articles.Archive)
}

// Unarchive handles PATCH /api/v1/editorial/articles/:id/unarchive
func (h *ArticleHandler) Unarchive(c *gin.Context) {
	h.changeArchived(c, h.articles.Unarchive)
}

func (h *ArticleHandler) changeArchived(c *gin.Context, apply func(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req VersionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	article, err := apply(c.Request.Context(), actor, id, req.Version)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditorialResponse(article, actor))
}

// Delete handles DELETE /api/v1/editorial/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.articles.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reviews handles GET /api/v1/editorial/articles/:id/reviews
func (h *ArticleHandler) Reviews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	notes, err := h.articles.Reviews(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ReviewNoteResponse, len(notes))
	for i, n := range notes {
		highlights := n.Highlights
		if highlights == nil {
			highlights = []domain.Highlight{}
		}
		resp[i] = ReviewNoteResponse{
			ID:         n.ID,
			ArticleID:  n.ArticleID,
			ReviewerID: n.ReviewerID,
			Decision:   string(n.Decision),
			Note:       n.Note,
			Highlights: highlights,
			CreatedAt:  n.CreatedAt.Format(TimeFormat),
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ReviewQueue handles GET /api/v1/publisher/articles
func (h *ArticleHandler) ReviewQueue(c *gin.Context) {
	q, filter, ok := bindArticleQuery(c)
	if !ok {
		return
	}
	filter.Status = domain.ArticleStatusUnderReview

	articles, total, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleList(articles, total, q.PageQuery))
}

// Review handles POST /api/v1/publisher/articles/:id/review
func (h *ArticleHandler) Review(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateReview(&req.ReviewInput); err != nil {
		respondError(c, err)
		return
	}

	article, err := h.articles.Review(c.Request.Context(), actor, id, req.ReviewInput, req.Version)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditorialResponse(article, actor))
}
