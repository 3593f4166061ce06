package repositories

import (
	"context"

	"github.com/lib/pq"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"gorm.io/gorm"
)

// InspirationListFilter narrows the public listing (explore page).
type InspirationListFilter struct {
	Tag    string
	Search string
	Limit  int
	Offset int
}

// InspirationRepository defines the interface for inspiration data operations
type InspirationRepository interface {
	CreateInspiration(ctx context.Context, inspiration *models.Inspiration) error
	GetInspirationByID(ctx context.Context, id string) (*models.Inspiration, error)
	UpdateInspiration(ctx context.Context, inspiration *models.Inspiration) error
	DeleteInspiration(ctx context.Context, id string) error
	ListPublic(ctx context.Context, filter InspirationListFilter) ([]models.Inspiration, error)
	ListRecentPublic(ctx context.Context, limit int, excludeUserID string) ([]models.Inspiration, error)
	ListPublicByTagOverlap(ctx context.Context, tags []string, excludeUserID string, excludeIDs []string, limit int) ([]models.Inspiration, error)
	ListByUser(ctx context.Context, userID string) ([]models.Inspiration, error)
}

// PostgresInspirationRepository implements InspirationRepository for PostgreSQL
type PostgresInspirationRepository struct {
	db *gorm.DB
}

// NewPostgresInspirationRepository creates a new PostgresInspirationRepository
func NewPostgresInspirationRepository(db *gorm.DB) *PostgresInspirationRepository {
	return &PostgresInspirationRepository{db: db}
}

func (r *PostgresInspirationRepository) CreateInspiration(ctx context.Context, inspiration *models.Inspiration) error {
	return r.db.WithContext(ctx).Create(inspiration).Error
}

func (r *PostgresInspirationRepository) GetInspirationByID(ctx context.Context, id string) (*models.Inspiration, error) {
	var inspiration models.Inspiration
	if err := r.db.WithContext(ctx).First(&inspiration, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inspiration, nil
}

func (r *PostgresInspirationRepository) UpdateInspiration(ctx context.Context, inspiration *models.Inspiration) error {
	return r.db.WithContext(ctx).Save(inspiration).Error
}

func (r *PostgresInspirationRepository) DeleteInspiration(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Inspiration{}, "id = ?", id).Error
}

// ListPublic returns public inspirations, newest first, optionally filtered
// by a single tag (array membership) and a content substring.
func (r *PostgresInspirationRepository) ListPublic(ctx context.Context, filter InspirationListFilter) ([]models.Inspiration, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Where("is_public = ?", true)
	if filter.Tag != "" {
		q = q.Where("tags && ?", pq.Array([]string{filter.Tag}))
	}
	if filter.Search != "" {
		q = q.Where("content ILIKE ?", "%"+filter.Search+"%")
	}

	var inspirations []models.Inspiration
	err := q.Order("created_at DESC").Offset(filter.Offset).Limit(limit).Find(&inspirations).Error
	return inspirations, err
}

func (r *PostgresInspirationRepository) ListRecentPublic(ctx context.Context, limit int, excludeUserID string) ([]models.Inspiration, error) {
	q := r.db.WithContext(ctx).Where("is_public = ?", true)
	if excludeUserID != "" {
		q = q.Where("user_id <> ?", excludeUserID)
	}

	var inspirations []models.Inspiration
	err := q.Order("created_at DESC").Limit(limit).Find(&inspirations).Error
	return inspirations, err
}

// ListPublicByTagOverlap returns public inspirations whose tag set shares at
// least one tag with the given set, excluding the viewer's own posts and any
// already-interacted ids, newest first.
func (r *PostgresInspirationRepository) ListPublicByTagOverlap(ctx context.Context, tags []string, excludeUserID string, excludeIDs []string, limit int) ([]models.Inspiration, error) {
	q := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Where("tags && ?", pq.Array(tags))
	if excludeUserID != "" {
		q = q.Where("user_id <> ?", excludeUserID)
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var inspirations []models.Inspiration
	err := q.Order("created_at DESC").Limit(limit).Find(&inspirations).Error
	return inspirations, err
}

func (r *PostgresInspirationRepository) ListByUser(ctx context.Context, userID string) ([]models.Inspiration, error) {
	var inspirations []models.Inspiration
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&inspirations).Error
	return inspirations, err
}
