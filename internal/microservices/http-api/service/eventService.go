package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/microservices/http-api/repository"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]dto.EventResponse, error)
	GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error)
	CreateEvent(ctx context.Context, v viewer.Viewer, req *dto.EventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, v viewer.Viewer, id int64, req *dto.EventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, v viewer.Viewer, id int64) error
}

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	list, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToEventResponses(list), nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("event id must be positive: %w", shared.ErrInvalidArgument)
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToEventResponse(event), nil
}

func (s *eventService) CreateEvent(ctx context.Context, v viewer.Viewer, req *dto.EventRequest) (*dto.EventResponse, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}
	event, err := prepareEvent(req)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "event_created", "event_id", event.ID, "user_id", v.ID)
	return dto.FromModelToEventResponse(event), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, v viewer.Viewer, id int64, req *dto.EventRequest) (*dto.EventResponse, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("event id must be positive: %w", shared.ErrInvalidArgument)
	}
	event, err := prepareEvent(req)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, id, event); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "event_updated", "event_id", id, "user_id", v.ID)
	return s.GetEvent(ctx, id)
}

// DeleteEvent removes an event; its fights, and their ratings and
// comments, go with it.
func (s *eventService) DeleteEvent(ctx context.Context, v viewer.Viewer, id int64) error {
	if err := viewer.Require(v); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("event id must be positive: %w", shared.ErrInvalidArgument)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "event_deleted", "event_id", id, "user_id", v.ID)
	return nil
}

func prepareEvent(req *dto.EventRequest) (*models.Event, error) {
	event := req.ToModel()
	event.Title = strings.TrimSpace(event.Title)
	event.Promotion = strings.TrimSpace(event.Promotion)

	if event.Title == "" {
		return nil, fmt.Errorf("title is required: %w", shared.ErrInvalidArgument)
	}
	if event.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", shared.ErrInvalidArgument)
	}
	if event.Promotion == "" {
		event.Promotion = models.DefaultPromotion
	}
	return event, nil
}

func requireEvent(ctx context.Context, events repository.EventRepository, eventID int64) error {
	if eventID <= 0 {
		return fmt.Errorf("event id must be positive: %w", shared.ErrInvalidArgument)
	}
	exists, err := events.Exists(ctx, eventID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("event %d: %w", eventID, shared.ErrNotFound)
	}
	return nil
}
