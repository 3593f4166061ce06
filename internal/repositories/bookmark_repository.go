package repositories

import (
	"context"

	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for bookmark data operations.
// Same toggle discipline as ResonateRepository.
type BookmarkRepository interface {
	CreateIfAbsent(ctx context.Context, bookmark *models.Bookmark) (bool, error)
	DeleteByUserAndInspiration(ctx context.Context, userID, inspirationID string) (bool, error)
	HasUserBookmarked(ctx context.Context, userID, inspirationID string) (bool, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Bookmark, error)
	ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error)
}

// PostgresBookmarkRepository implements BookmarkRepository for PostgreSQL
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

// NewPostgresBookmarkRepository creates a new PostgresBookmarkRepository
func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) CreateIfAbsent(ctx context.Context, bookmark *models.Bookmark) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "inspiration_id"}},
			DoNothing: true,
		}).
		Create(bookmark)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresBookmarkRepository) DeleteByUserAndInspiration(ctx context.Context, userID, inspirationID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND inspiration_id = ?", userID, inspirationID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresBookmarkRepository) HasUserBookmarked(ctx context.Context, userID, inspirationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND inspiration_id = ?", userID, inspirationID).
		Count(&count).Error
	return count > 0, err
}

// ListRecentByUser returns the user's newest bookmarks with the target
// inspiration preloaded, for tag-frequency personalization.
func (r *PostgresBookmarkRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.WithContext(ctx).
		Preload("Inspiration").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *PostgresBookmarkRepository) ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.WithContext(ctx).
		Preload("Inspiration").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}
