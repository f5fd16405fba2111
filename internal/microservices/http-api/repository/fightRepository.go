package repository

import (
	"context"

	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/shared"

	"gorm.io/gorm"
)

type FightRepository interface {
	ListWithRatings(ctx context.Context, viewerID string, eventID *int64) ([]models.FightWithRating, error)
	GetWithRating(ctx context.Context, viewerID string, id int64) (*models.FightWithRating, error)
	GetByID(ctx context.Context, id int64) (*models.Fight, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, f *models.Fight) error
	Update(ctx context.Context, id int64, f *models.Fight) error
	Delete(ctx context.Context, id int64) error
}

// FightRepo is the GORM store of fights and the home of the aggregation view.
type FightRepo struct {
	db *gorm.DB
}

func NewFightRepo(db *gorm.DB) *FightRepo {
	return &FightRepo{db: db}
}

// aggregateColumns projects a fight plus its rating aggregate. The viewer id
// is bound once; MAX() folds the single matching row (if any) into the group.
const aggregateColumns = `fights.id, fights.event_id, fights.title, fights.fighter1, fights.fighter2,
	fights.date, fights.created_at,
	CAST(COALESCE(AVG(ratings.score), 0) AS DOUBLE PRECISION) AS average_rating,
	COUNT(ratings.id) AS rating_count,
	MAX(CASE WHEN ratings.user_id = ? THEN ratings.score END) AS user_rating`

func (r *FightRepo) aggregate(ctx context.Context, viewerID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("fights").
		Select(aggregateColumns, viewerArg(viewerID)).
		Joins("LEFT JOIN ratings ON ratings.fight_id = fights.id").
		Group("fights.id")
}

// ListWithRatings returns every fight (optionally of one event) with its
// community average and the viewer's score, in one round trip.
// Ordered by date, most recent first; ties by creation order.
func (r *FightRepo) ListWithRatings(ctx context.Context, viewerID string, eventID *int64) ([]models.FightWithRating, error) {
	q := r.aggregate(ctx, viewerID)
	if eventID != nil {
		q = q.Where("fights.event_id = ?", *eventID)
	}

	list := make([]models.FightWithRating, 0)
	if err := q.Order("fights.date DESC, fights.id ASC").Scan(&list).Error; err != nil {
		return nil, mapError("list fights", err)
	}
	return list, nil
}

// GetWithRating is ListWithRatings for a single fight.
func (r *FightRepo) GetWithRating(ctx context.Context, viewerID string, id int64) (*models.FightWithRating, error) {
	var list []models.FightWithRating
	if err := r.aggregate(ctx, viewerID).Where("fights.id = ?", id).Scan(&list).Error; err != nil {
		return nil, mapError("get fight", err)
	}
	if len(list) == 0 {
		return nil, shared.ErrNotFound
	}
	return &list[0], nil
}

func (r *FightRepo) GetByID(ctx context.Context, id int64) (*models.Fight, error) {
	var f models.Fight
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, mapError("get fight", err)
	}
	return &f, nil
}

// Exists reports whether a fight with id is present.
func (r *FightRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Fight{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, mapError("check fight", err)
	}
	return count > 0, nil
}

func (r *FightRepo) Create(ctx context.Context, f *models.Fight) error {
	// GORM will populate f.ID and f.CreatedAt
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return mapError("create fight", err)
	}
	return nil
}

// Update overwrites the mutable columns of fight id.
func (r *FightRepo) Update(ctx context.Context, id int64, f *models.Fight) error {
	res := r.db.WithContext(ctx).
		Model(&models.Fight{}).
		Where("id = ?", id).
		Select("event_id", "title", "fighter1", "fighter2", "date", "updated_at").
		Updates(f)
	if res.Error != nil {
		return mapError("update fight", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	f.ID = id
	return nil
}

// Delete removes a fight; its ratings and comments go with it (ON DELETE CASCADE).
func (r *FightRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Fight{}, id)
	if res.Error != nil {
		return mapError("delete fight", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
