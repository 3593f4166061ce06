package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
)

// TagSuggester proposes tags for post content
type TagSuggester interface {
	SuggestTags(ctx context.Context, content string) []string
}

// Summarizer generates a one-line summary for post content
type Summarizer interface {
	Summarize(ctx context.Context, content string) (*services.SummaryResult, error)
}

// AIHandler handles tag suggestion and summary requests
type AIHandler struct {
	tagService     TagSuggester
	summaryService Summarizer
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(tagService TagSuggester, summaryService Summarizer) *AIHandler {
	return &AIHandler{
		tagService:     tagService,
		summaryService: summaryService,
	}
}

// RegisterAIRoutes registers AI-assist routes
func (h *AIHandler) RegisterAIRoutes(g *echo.Group) {
	g.POST("/suggest-tags", h.SuggestTags)
	g.POST("/summarize", h.Summarize)
}

// ContentRequest is the shared body for both AI endpoints
type ContentRequest struct {
	Content string `json:"content"`
}

// SuggestTags proposes up to 5 tags for the given content. Missing or empty
// content is rejected before either tag path runs.
func (h *AIHandler) SuggestTags(c echo.Context) error {
	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	tags := h.tagService.SuggestTags(c.Request().Context(), req.Content)
	return c.JSON(http.StatusOK, echo.Map{"tags": tags})
}

// Summarize generates a one-line summary for the given content
func (h *AIHandler) Summarize(c echo.Context) error {
	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	result, err := h.summaryService.Summarize(c.Request().Context(), req.Content)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, services.SummaryResult{
			Summary:     "요약을 생성할 수 없습니다.",
			KeyPoints:   []string{},
			ActionItems: []string{},
		})
	}
	return c.JSON(http.StatusOK, result)
}
