package repositories

import (
	"context"

	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	ListByInspiration(ctx context.Context, inspirationID string) ([]models.Comment, error)
	CountByInspiration(ctx context.Context, inspirationID string) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByInspiration returns comments oldest first, the reading order of a
// comment thread.
func (r *PostgresCommentRepository) ListByInspiration(ctx context.Context, inspirationID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("inspiration_id = ?", inspirationID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *PostgresCommentRepository) CountByInspiration(ctx context.Context, inspirationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("inspiration_id = ?", inspirationID).
		Count(&count).Error
	return count, err
}
