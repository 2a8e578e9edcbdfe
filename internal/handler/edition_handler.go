package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/service"
	"pusaka-newsletter/internal/validator"
)

// EditionHandler handles edition requests.
type EditionHandler struct {
	editions  service.EditionServiceInterface
	validator *validator.Validator
}

// NewEditionHandler creates a new EditionHandler.
func NewEditionHandler(editions service.EditionServiceInterface, v *validator.Validator) *EditionHandler {
	return &EditionHandler{editions: editions, validator: v}
}

// EditionQuery holds the filters of GET /editorial/editions.
type EditionQuery struct {
	PageQuery
	Published *bool `form:"published"`
}

// EditionResponse represents an edition in API responses.
type EditionResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	PublishDate   string            `json:"publish_date"`
	EditionNumber *int              `json:"edition_number,omitempty"`
	Theme         string            `json:"theme"`
	IsPublished   bool              `json:"is_published"`
	CoverImages   []string          `json:"cover_images"`
	CreatedBy     string            `json:"created_by"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
	Articles      []ArticleResponse `json:"articles,omitempty"`
}

func toEditionResponse(e *domain.Edition) EditionResponse {
	covers := e.CoverImages
	if covers == nil {
		covers = []string{}
	}
	resp := EditionResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		PublishDate:   e.PublishDate.Format(TimeFormat),
		EditionNumber: e.EditionNumber,
		Theme:         e.Theme,
		IsPublished:   e.IsPublished,
		CoverImages:   covers,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt.Format(TimeFormat),
		UpdatedAt:     e.UpdatedAt.Format(TimeFormat),
	}
	for i := range e.Articles {
		resp.Articles = append(resp.Articles, toArticleResponse(&e.Articles[i], false))
	}
	return resp
}

// Create handles POST /api/v1/editorial/editions
func (h *EditionHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var in domain.EditionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.validator.ValidateEditionInput(&in); err != nil {
		respondError(c, err)
		return
	}

	edition, err := h.editions.Create(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEditionResponse(edition))
}

// List handles GET /api/v1/editorial/editions
func (h *EditionHandler) List(c *gin.Context) {
	var q EditionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err)
		return
	}
	q.PageQuery = q.PageQuery.normalize()

	editions, total, err := h.editions.List(c.Request.Context(), domain.EditionFilter{
		Published: q.Published,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]EditionResponse, len(editions))
	for i := range editions {
		data[i] = toEditionResponse(&editions[i])
	}
	c.JSON(http.StatusOK, ListResponse[EditionResponse]{Data: data, Total: total, Limit: q.Limit, Offset: q.Offset})
}

// Get handles GET /api/v1/editorial/editions/:id
func (h *EditionHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	edition, err := h.editions.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditionResponse(edition))
}

// Publish handles PATCH /api/v1/admin/editions/:id/publish
func (h *EditionHandler) Publish(c *gin.Context) {
	h.setPublished(c, true)
}

// Unpublish handles PATCH /api/v1/admin/editions/:id/unpublish
func (h *EditionHandler) Unpublish(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *EditionHandler) setPublished(c *gin.Context, published bool) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	edition, err := h.editions.SetPublished(c.Request.Context(), actor, id, published)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEditionResponse(edition))
}
