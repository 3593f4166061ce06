package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"github.com/seojin-dev/as-human-being/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	interactionService *services.InteractionService
	commentRepository  repositories.CommentRepository
	profileRepository  repositories.ProfileRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	interactionService *services.InteractionService,
	commentRepo repositories.CommentRepository,
	profileRepo repositories.ProfileRepository,
) *CommentHandler {
	return &CommentHandler{
		interactionService: interactionService,
		commentRepository:  commentRepo,
		profileRepository:  profileRepo,
	}
}

// RegisterPublicRoutes registers comment listing
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/inspirations/:id/comments", h.ListComments)
}

// RegisterProtectedRoutes registers comment creation
func (h *CommentHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/inspirations/:id/comments", h.CreateComment)
}

// CreateComment appends a comment to an inspiration. Notification fan-out to
// the owner happens in the interaction service.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.interactionService.CreateComment(c.Request().Context(), currentUserID, c.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrInspirationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments returns an inspiration's comments, oldest first, each with
// its author resolved
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentRepository.ListByInspiration(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	authorIDs := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for _, comment := range comments {
		if !seen[comment.UserID] {
			seen[comment.UserID] = true
			authorIDs = append(authorIDs, comment.UserID)
		}
	}
	authors, err := h.profileRepository.GetProfilesByIDs(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := make([]models.EnrichedComment, len(comments))
	for i, comment := range comments {
		author := authors[comment.UserID]
		enriched[i] = models.EnrichedComment{
			Comment: comment,
			Author:  author.ToCompact(),
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": enriched})
}
