package repository

import (
	"context"

	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/shared"

	"gorm.io/gorm"
)

type EventRepository interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, id int64, e *models.Event) error
	Delete(ctx context.Context, id int64) error
}

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

// GetAll lists events, most recent first.
func (r *EventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	list := make([]models.Event, 0)
	if err := r.db.WithContext(ctx).Order("date DESC, id ASC").Find(&list).Error; err != nil {
		return nil, mapError("list events", err)
	}
	return list, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var e models.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, mapError("get event", err)
	}
	return &e, nil
}

func (r *EventRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, mapError("check event", err)
	}
	return count > 0, nil
}

func (r *EventRepo) Create(ctx context.Context, e *models.Event) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return mapError("create event", err)
	}
	return nil
}

func (r *EventRepo) Update(ctx context.Context, id int64, e *models.Event) error {
	res := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Select("title", "promotion", "date", "updated_at").
		Updates(e)
	if res.Error != nil {
		return mapError("update event", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	e.ID = id
	return nil
}

// Delete removes an event and, through ON DELETE CASCADE, its fights.
func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if res.Error != nil {
		return mapError("delete event", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
