package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
)

// Recommender selects inspirations for a viewer
type Recommender interface {
	Recommend(ctx context.Context, viewerID string) *services.Recommendations
}

// RecommendationHandler handles the recommendation feed
type RecommendationHandler struct {
	recommendationService Recommender
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(recommendationService Recommender) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RegisterRecommendationRoutes registers recommendation routes
func (h *RecommendationHandler) RegisterRecommendationRoutes(g *echo.Group) {
	g.GET("/recommendations", h.GetRecommendations)
}

// GetRecommendations returns up to 6 inspirations for the viewer identified
// by the userId query param, or the recent public feed for anonymous
// visitors. A degraded (storage-failure) result maps to 500 with an empty
// payload; everything else is 200.
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	viewerID := c.QueryParam("userId")

	recs := h.recommendationService.Recommend(c.Request().Context(), viewerID)
	if recs.Type == services.RecommendationTypeError {
		return c.JSON(http.StatusInternalServerError, recs)
	}
	return c.JSON(http.StatusOK, recs)
}
