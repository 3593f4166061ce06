package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"gorm.io/gorm"
)

// InspirationHandler handles HTTP requests related to inspirations
type InspirationHandler struct {
	inspirationRepository repositories.InspirationRepository
	profileRepository     repositories.ProfileRepository
	resonateRepository    repositories.ResonateRepository
	bookmarkRepository    repositories.BookmarkRepository
	commentRepository     repositories.CommentRepository
}

// NewInspirationHandler creates a new InspirationHandler
func NewInspirationHandler(
	inspirationRepo repositories.InspirationRepository,
	profileRepo repositories.ProfileRepository,
	resonateRepo repositories.ResonateRepository,
	bookmarkRepo repositories.BookmarkRepository,
	commentRepo repositories.CommentRepository,
) *InspirationHandler {
	return &InspirationHandler{
		inspirationRepository: inspirationRepo,
		profileRepository:     profileRepo,
		resonateRepository:    resonateRepo,
		bookmarkRepository:    bookmarkRepo,
		commentRepository:     commentRepo,
	}
}

// RegisterPublicRoutes registers read-only inspiration routes
func (h *InspirationHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/inspirations", h.ListInspirations)
	g.GET("/inspirations/:id", h.GetInspiration)
}

// RegisterProtectedRoutes registers author-only inspiration routes
func (h *InspirationHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/inspirations", h.CreateInspiration)
	g.PUT("/inspirations/:id", h.UpdateInspiration)
	g.DELETE("/inspirations/:id", h.DeleteInspiration)
	g.GET("/my/inspirations", h.ListOwnInspirations)
}

// ListInspirations returns public inspirations, newest first, optionally
// filtered by tag and content search (explore page).
func (h *InspirationHandler) ListInspirations(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	inspirations, err := h.inspirationRepository.ListPublic(c.Request().Context(), repositories.InspirationListFilter{
		Tag:    c.QueryParam("tag"),
		Search: c.QueryParam("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched, err := h.enrich(c, inspirations)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"inspirations": enriched})
}

// GetInspiration returns a single inspiration with author, counts and the
// viewer's interaction flags.
func (h *InspirationHandler) GetInspiration(c echo.Context) error {
	ctx := c.Request().Context()
	inspiration, err := h.inspirationRepository.GetInspirationByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	currentUserID := getUserIDFromContext(c)
	if !inspiration.IsPublic && inspiration.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
	}

	enriched, err := h.enrich(c, []models.Inspiration{*inspiration})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	commentCount, _ := h.commentRepository.CountByInspiration(ctx, inspiration.ID)

	return c.JSON(http.StatusOK, echo.Map{
		"inspiration":   enriched[0],
		"comment_count": commentCount,
	})
}

// CreateInspiration creates a new inspiration authored by the current user
func (h *InspirationHandler) CreateInspiration(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateInspirationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	inspiration := &models.Inspiration{
		ID:       uuid.NewString(),
		UserID:   currentUserID,
		Content:  req.Content,
		Context:  req.Context,
		Tags:     req.Tags,
		IsPublic: isPublic,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
	}
	if err := h.inspirationRepository.CreateInspiration(c.Request().Context(), inspiration); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, inspiration)
}

// UpdateInspiration edits an inspiration; author only
func (h *InspirationHandler) UpdateInspiration(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateInspirationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	inspiration, err := h.inspirationRepository.GetInspirationByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if inspiration.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author can edit this inspiration")
	}

	if req.Content != nil {
		inspiration.Content = *req.Content
	}
	if req.Context != nil {
		inspiration.Context = req.Context
	}
	if req.Tags != nil {
		inspiration.Tags = req.Tags
	}
	if req.IsPublic != nil {
		inspiration.IsPublic = *req.IsPublic
	}

	if err := h.inspirationRepository.UpdateInspiration(ctx, inspiration); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, inspiration)
}

// DeleteInspiration removes an inspiration; author only
func (h *InspirationHandler) DeleteInspiration(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ctx := c.Request().Context()
	inspiration, err := h.inspirationRepository.GetInspirationByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Inspiration not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if inspiration.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author can delete this inspiration")
	}

	if err := h.inspirationRepository.DeleteInspiration(ctx, inspiration.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOwnInspirations returns the current user's inspirations, public or not
func (h *InspirationHandler) ListOwnInspirations(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	inspirations, err := h.inspirationRepository.ListByUser(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"inspirations": inspirations})
}

// enrich resolves authors and counts, plus the viewer's flags when
// authenticated.
func (h *InspirationHandler) enrich(c echo.Context, inspirations []models.Inspiration) ([]models.EnrichedInspiration, error) {
	ctx := c.Request().Context()
	currentUserID := getUserIDFromContext(c)

	ids := make([]string, len(inspirations))
	authorIDs := make([]string, 0, len(inspirations))
	seen := make(map[string]bool)
	for i, insp := range inspirations {
		ids[i] = insp.ID
		if !seen[insp.UserID] {
			seen[insp.UserID] = true
			authorIDs = append(authorIDs, insp.UserID)
		}
	}

	authors, err := h.profileRepository.GetProfilesByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	counts, err := h.resonateRepository.CountsForInspirations(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedInspiration, len(inspirations))
	for i, insp := range inspirations {
		author := authors[insp.UserID]
		enriched[i] = models.EnrichedInspiration{
			Inspiration:   insp,
			Author:        author.ToCompact(),
			ResonateCount: counts[insp.ID],
		}
		if currentUserID != "" {
			enriched[i].IsResonated, _ = h.resonateRepository.HasUserResonated(ctx, currentUserID, insp.ID)
			enriched[i].IsBookmarked, _ = h.bookmarkRepository.HasUserBookmarked(ctx, currentUserID, insp.ID)
		}
	}
	return enriched, nil
}
