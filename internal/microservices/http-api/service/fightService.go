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

type FightService interface {
	ListFights(ctx context.Context, v viewer.Viewer, eventID *int64) ([]dto.FightResponse, error)
	GetFight(ctx context.Context, v viewer.Viewer, id int64) (*dto.FightResponse, error)
	CreateFight(ctx context.Context, v viewer.Viewer, req *dto.FightRequest) (*dto.FightResponse, error)
	UpdateFight(ctx context.Context, v viewer.Viewer, id int64, req *dto.FightRequest) (*dto.FightResponse, error)
	DeleteFight(ctx context.Context, v viewer.Viewer, id int64) error
}

type fightService struct {
	fightRepo repository.FightRepository
	eventRepo repository.EventRepository
}

func NewFightService(fightRepo repository.FightRepository, eventRepo repository.EventRepository) FightService {
	return &fightService{
		fightRepo: fightRepo,
		eventRepo: eventRepo,
	}
}

// ListFights is the aggregation view: every fight, rated or not, with the
// community average and the viewer's own score. One query per call.
func (s *fightService) ListFights(ctx context.Context, v viewer.Viewer, eventID *int64) ([]dto.FightResponse, error) {
	if eventID != nil {
		if err := requireEvent(ctx, s.eventRepo, *eventID); err != nil {
			return nil, err
		}
	}

	list, err := s.fightRepo.ListWithRatings(ctx, v.ID, eventID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToFightResponses(list), nil
}

func (s *fightService) GetFight(ctx context.Context, v viewer.Viewer, id int64) (*dto.FightResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("fight id must be positive: %w", shared.ErrInvalidArgument)
	}
	fight, err := s.fightRepo.GetWithRating(ctx, v.ID, id)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToFightResponse(fight), nil
}

func (s *fightService) CreateFight(ctx context.Context, v viewer.Viewer, req *dto.FightRequest) (*dto.FightResponse, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}
	fight, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.fightRepo.Create(ctx, fight); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "fight_created", "fight_id", fight.ID, "user_id", v.ID)

	return s.GetFight(ctx, v, fight.ID)
}

// UpdateFight replaces title, fighters, date and event. Any authenticated
// viewer may edit any fight; ratings and comments are untouched.
func (s *fightService) UpdateFight(ctx context.Context, v viewer.Viewer, id int64, req *dto.FightRequest) (*dto.FightResponse, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("fight id must be positive: %w", shared.ErrInvalidArgument)
	}
	fight, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.fightRepo.Update(ctx, id, fight); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "fight_updated", "fight_id", id, "user_id", v.ID)

	return s.GetFight(ctx, v, id)
}

// DeleteFight removes a fight together with its ratings and comments.
func (s *fightService) DeleteFight(ctx context.Context, v viewer.Viewer, id int64) error {
	if err := viewer.Require(v); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("fight id must be positive: %w", shared.ErrInvalidArgument)
	}
	if err := s.fightRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "fight_deleted", "fight_id", id, "user_id", v.ID)
	return nil
}

// prepare validates req and turns it into a model.
func (s *fightService) prepare(ctx context.Context, req *dto.FightRequest) (*models.Fight, error) {
	fight := req.ToModel()
	fight.Fighter1 = strings.TrimSpace(fight.Fighter1)
	fight.Fighter2 = strings.TrimSpace(fight.Fighter2)
	fight.Title = strings.TrimSpace(fight.Title)

	if fight.Fighter1 == "" || fight.Fighter2 == "" {
		return nil, fmt.Errorf("both fighters are required: %w", shared.ErrInvalidArgument)
	}
	if fight.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", shared.ErrInvalidArgument)
	}
	if fight.Title == "" {
		fight.Title = fight.Fighter1 + " vs " + fight.Fighter2
	}

	if fight.EventID != nil {
		if err := requireEvent(ctx, s.eventRepo, *fight.EventID); err != nil {
			return nil, err
		}
	}
	return fight, nil
}

// requireFight fails with InvalidArgument for a non-positive id and
// NotFound for an absent fight.
func requireFight(ctx context.Context, fights repository.FightRepository, fightID int64) error {
	if fightID <= 0 {
		return fmt.Errorf("fight id must be positive: %w", shared.ErrInvalidArgument)
	}
	exists, err := fights.Exists(ctx, fightID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("fight %d: %w", fightID, shared.ErrNotFound)
	}
	return nil
}
