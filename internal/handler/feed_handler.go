package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/service"
)

// FeedHandler serves the public syndication feed.
type FeedHandler struct {
	feed service.FeedServiceInterface
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feed service.FeedServiceInterface) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Feed handles GET /feed.xml?format=rss|atom
func (h *FeedHandler) Feed(c *gin.Context) {
	format := c.DefaultQuery("format", service.FeedRSS)

	out, err := h.feed.Render(c.Request.Context(), format)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := "application/rss+xml; charset=utf-8"
	if format == service.FeedAtom {
		contentType = "application/atom+xml; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, []byte(out))
}
