package repositories

import (
	"context"

	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResonateRepository defines the interface for resonate data operations.
// CreateIfAbsent/DeleteByUserAndInspiration are the two halves of the atomic
// toggle: both are single statements keyed on the composite unique index, so
// concurrent double-submits collapse to at most one row.
type ResonateRepository interface {
	CreateIfAbsent(ctx context.Context, resonate *models.Resonate) (bool, error)
	DeleteByUserAndInspiration(ctx context.Context, userID, inspirationID string) (bool, error)
	HasUserResonated(ctx context.Context, userID, inspirationID string) (bool, error)
	CountByInspiration(ctx context.Context, inspirationID string) (int64, error)
	CountsForInspirations(ctx context.Context, inspirationIDs []string) (map[string]int64, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Resonate, error)
}

// PostgresResonateRepository implements ResonateRepository for PostgreSQL
type PostgresResonateRepository struct {
	db *gorm.DB
}

// NewPostgresResonateRepository creates a new PostgresResonateRepository
func NewPostgresResonateRepository(db *gorm.DB) *PostgresResonateRepository {
	return &PostgresResonateRepository{db: db}
}

// CreateIfAbsent inserts the resonate with ON CONFLICT DO NOTHING on the
// (user_id, inspiration_id) unique index. Returns whether a row was created.
func (r *PostgresResonateRepository) CreateIfAbsent(ctx context.Context, resonate *models.Resonate) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "inspiration_id"}},
			DoNothing: true,
		}).
		Create(resonate)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteByUserAndInspiration removes the join row if present. Returns whether
// a row was deleted.
func (r *PostgresResonateRepository) DeleteByUserAndInspiration(ctx context.Context, userID, inspirationID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND inspiration_id = ?", userID, inspirationID).
		Delete(&models.Resonate{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresResonateRepository) HasUserResonated(ctx context.Context, userID, inspirationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Resonate{}).
		Where("user_id = ? AND inspiration_id = ?", userID, inspirationID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostgresResonateRepository) CountByInspiration(ctx context.Context, inspirationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Resonate{}).
		Where("inspiration_id = ?", inspirationID).
		Count(&count).Error
	return count, err
}

func (r *PostgresResonateRepository) CountsForInspirations(ctx context.Context, inspirationIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	if len(inspirationIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		InspirationID string
		Count         int64
	}
	err := r.db.WithContext(ctx).Model(&models.Resonate{}).
		Select("inspiration_id, COUNT(*) AS count").
		Where("inspiration_id IN ?", inspirationIDs).
		Group("inspiration_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.InspirationID] = row.Count
	}
	return result, nil
}

// ListRecentByUser returns the user's newest resonates with the target
// inspiration preloaded, for tag-frequency personalization.
func (r *PostgresResonateRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Resonate, error) {
	var resonates []models.Resonate
	err := r.db.WithContext(ctx).
		Preload("Inspiration").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&resonates).Error
	return resonates, err
}
