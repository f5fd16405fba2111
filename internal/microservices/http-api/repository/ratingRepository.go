package repository

import (
	"context"
	"time"

	"fightcard/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, userID string, fightID int64, score int) (*models.Rating, error)
	GetByUserAndFight(ctx context.Context, userID string, fightID int64) (*models.Rating, error)
	Summary(ctx context.Context, fightID int64, viewerID string) (*models.RatingSummary, error)
	CountByFight(ctx context.Context, fightID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the viewer's score in one INSERT ... ON CONFLICT statement
// keyed on idx_ratings_user_fight. An existing row keeps its id and
// created_at; only score and updated_at change. Concurrent callers for the
// same pair are serialized by the unique index, last writer wins.
func (r *ratingRepository) Upsert(ctx context.Context, userID string, fightID int64, score int) (*models.Rating, error) {
	now := time.Now().UTC()
	rating := &models.Rating{
		UserID:    userID,
		FightID:   fightID,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := upsertStatement(r.db.WithContext(ctx), rating).Error; err != nil {
		return nil, mapError("upsert rating", err)
	}

	// RETURNING is not reliable for the update branch on every driver,
	// reload to get the surviving row
	return r.GetByUserAndFight(ctx, userID, fightID)
}

// upsertStatement is the single INSERT ... ON CONFLICT DO UPDATE behind Upsert.
func upsertStatement(tx *gorm.DB, rating *models.Rating) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "fight_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating)
}

// GetByUserAndFight retrieves a user's rating for a specific fight
func (r *ratingRepository) GetByUserAndFight(ctx context.Context, userID string, fightID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND fight_id = ?", userID, fightID).
		First(&rating).Error
	if err != nil {
		return nil, mapError("get rating", err)
	}
	return &rating, nil
}

// Summary computes average, count and the viewer's score for one fight in a
// single grouped query. An empty viewerID (anonymous) matches no row.
func (r *ratingRepository) Summary(ctx context.Context, fightID int64, viewerID string) (*models.RatingSummary, error) {
	var row struct {
		Average     float64
		Count       int64
		ViewerScore *int
	}

	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select(`CAST(COALESCE(AVG(score), 0) AS DOUBLE PRECISION) AS average,
			COUNT(*) AS count,
			MAX(CASE WHEN user_id = ? THEN score END) AS viewer_score`, viewerArg(viewerID)).
		Where("fight_id = ?", fightID).
		Scan(&row).Error
	if err != nil {
		return nil, mapError("rating summary", err)
	}

	return &models.RatingSummary{
		FightID:     fightID,
		Average:     row.Average,
		Count:       row.Count,
		ViewerScore: row.ViewerScore,
	}, nil
}

// CountByFight counts the total number of ratings for a fight
func (r *ratingRepository) CountByFight(ctx context.Context, fightID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("fight_id = ?", fightID).Count(&count).Error
	if err != nil {
		return 0, mapError("count ratings", err)
	}
	return count, nil
}

// viewerArg binds NULL for anonymous viewers: "user_id = NULL" is never
// true, and PostgreSQL would reject an empty string as a uuid literal.
func viewerArg(viewerID string) any {
	if viewerID == "" {
		return nil
	}
	return viewerID
}
