package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
)

// InteractionHandler handles resonate/bookmark toggles and bookmark listing
type InteractionHandler struct {
	interactionService *services.InteractionService
	bookmarkRepository repositories.BookmarkRepository
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(interactionService *services.InteractionService, bookmarkRepo repositories.BookmarkRepository) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		bookmarkRepository: bookmarkRepo,
	}
}

// RegisterInteractionRoutes registers interaction routes
func (h *InteractionHandler) RegisterInteractionRoutes(g *echo.Group) {
	g.POST("/inspirations/:id/resonate", h.ToggleResonate)
	g.POST("/inspirations/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.ListBookmarks)
}

// ToggleResonate flips the resonate flag on an inspiration
func (h *InteractionHandler) ToggleResonate(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	result, err := h.interactionService.ToggleResonate(c.Request().Context(), currentUserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInspirationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleBookmark flips the bookmark flag on an inspiration
func (h *InteractionHandler) ToggleBookmark(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	result, err := h.interactionService.ToggleBookmark(c.Request().Context(), currentUserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInspirationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListBookmarks returns the current user's saved inspirations, newest first
func (h *InteractionHandler) ListBookmarks(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	bookmarks, err := h.bookmarkRepository.ListByUser(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	inspirations := make([]models.Inspiration, 0, len(bookmarks))
	for _, b := range bookmarks {
		if b.Inspiration != nil {
			inspirations = append(inspirations, *b.Inspiration)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"inspirations": inspirations})
}
