package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/monitoring"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInspirationNotFound = errors.New("inspiration not found")

// Notifier pushes a freshly created notification to the recipient's
// realtime stream.
type Notifier interface {
	NotifyNotification(n *models.Notification)
}

// ToggleResonateResult reports the new flag state and the displayed count.
type ToggleResonateResult struct {
	Resonated bool  `json:"resonated"`
	Count     int64 `json:"count"`
}

// ToggleBookmarkResult reports the new flag state.
type ToggleBookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}

// InteractionService toggles resonate/bookmark state for a (user, post)
// pair and fans out notifications to the post owner. Toggles are
// delete-then-upsert on the composite unique key, so a same-user
// double-submit can never produce two rows or zero rows.
type InteractionService struct {
	inspirationRepo  repositories.InspirationRepository
	resonateRepo     repositories.ResonateRepository
	bookmarkRepo     repositories.BookmarkRepository
	commentRepo      repositories.CommentRepository
	notificationRepo repositories.NotificationRepository
	notifier         Notifier
	cache            RecommendationCache
	logger           *zap.Logger
}

// NewInteractionService creates a new InteractionService. notifier and cache
// may be nil.
func NewInteractionService(
	inspirationRepo repositories.InspirationRepository,
	resonateRepo repositories.ResonateRepository,
	bookmarkRepo repositories.BookmarkRepository,
	commentRepo repositories.CommentRepository,
	notificationRepo repositories.NotificationRepository,
	notifier Notifier,
	cache RecommendationCache,
	logger *zap.Logger,
) *InteractionService {
	return &InteractionService{
		inspirationRepo:  inspirationRepo,
		resonateRepo:     resonateRepo,
		bookmarkRepo:     bookmarkRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		cache:            cache,
		logger:           logger,
	}
}

// ToggleResonate flips the resonate flag for (userID, inspirationID) and
// returns the new state with the current count.
func (s *InteractionService) ToggleResonate(ctx context.Context, userID, inspirationID string) (*ToggleResonateResult, error) {
	inspiration, err := s.getInspiration(ctx, inspirationID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.resonateRepo.DeleteByUserAndInspiration(ctx, userID, inspirationID)
	if err != nil {
		return nil, err
	}

	resonated := false
	if !deleted {
		created, err := s.resonateRepo.CreateIfAbsent(ctx, &models.Resonate{
			ID:            uuid.NewString(),
			UserID:        userID,
			InspirationID: inspirationID,
		})
		if err != nil {
			return nil, err
		}
		resonated = true
		if created && inspiration.UserID != userID {
			s.fanOut(ctx, models.NotificationTypeResonate, inspiration.UserID, userID, inspirationID)
		}
	}

	count, err := s.resonateRepo.CountByInspiration(ctx, inspirationID)
	if err != nil {
		return nil, err
	}

	s.invalidateRecommendations(ctx, userID)
	return &ToggleResonateResult{Resonated: resonated, Count: count}, nil
}

// ToggleBookmark flips the bookmark flag for (userID, inspirationID).
func (s *InteractionService) ToggleBookmark(ctx context.Context, userID, inspirationID string) (*ToggleBookmarkResult, error) {
	inspiration, err := s.getInspiration(ctx, inspirationID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.bookmarkRepo.DeleteByUserAndInspiration(ctx, userID, inspirationID)
	if err != nil {
		return nil, err
	}

	bookmarked := false
	if !deleted {
		created, err := s.bookmarkRepo.CreateIfAbsent(ctx, &models.Bookmark{
			ID:            uuid.NewString(),
			UserID:        userID,
			InspirationID: inspirationID,
		})
		if err != nil {
			return nil, err
		}
		bookmarked = true
		if created && inspiration.UserID != userID {
			s.fanOut(ctx, models.NotificationTypeBookmark, inspiration.UserID, userID, inspirationID)
		}
	}

	s.invalidateRecommendations(ctx, userID)
	return &ToggleBookmarkResult{Bookmarked: bookmarked}, nil
}

// CreateComment appends a comment and notifies the post owner when the
// commenter is someone else.
func (s *InteractionService) CreateComment(ctx context.Context, userID, inspirationID, content string) (*models.Comment, error) {
	inspiration, err := s.getInspiration(ctx, inspirationID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:            uuid.NewString(),
		UserID:        userID,
		InspirationID: inspirationID,
		Content:       content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if inspiration.UserID != userID {
		s.fanOut(ctx, models.NotificationTypeComment, inspiration.UserID, userID, inspirationID)
	}
	return comment, nil
}

func (s *InteractionService) getInspiration(ctx context.Context, inspirationID string) (*models.Inspiration, error) {
	inspiration, err := s.inspirationRepo.GetInspirationByID(ctx, inspirationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInspirationNotFound
		}
		return nil, err
	}
	return inspiration, nil
}

// fanOut writes exactly one notification for the owner and pushes it over
// the realtime stream. Failures are logged and swallowed so an interaction
// never fails on the notification leg.
func (s *InteractionService) fanOut(ctx context.Context, notificationType, recipientID, actorID, inspirationID string) {
	notification := &models.Notification{
		ID:            uuid.NewString(),
		UserID:        recipientID,
		Type:          notificationType,
		ActorID:       actorID,
		InspirationID: inspirationID,
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.logger.Error("failed to create notification",
			zap.String("type", notificationType),
			zap.String("recipient_id", recipientID),
			zap.Error(err))
		return
	}

	monitoring.NotificationsFannedOut.WithLabelValues(notificationType).Inc()
	if s.notifier != nil {
		s.notifier.NotifyNotification(notification)
	}
}

// Interactions feed personalization, so the actor's cached recommendations
// go stale on every toggle.
func (s *InteractionService) invalidateRecommendations(ctx context.Context, userID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}
