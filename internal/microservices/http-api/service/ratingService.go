package service

import (
	"context"
	"fmt"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/microservices/http-api/repository"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"
)

type RatingService interface {
	UpsertRating(ctx context.Context, v viewer.Viewer, fightID int64, score int) (*dto.RatingResponse, error)
	AverageAndViewerRating(ctx context.Context, fightID int64, v viewer.Viewer) (*dto.RatingSummaryResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	fightRepo  repository.FightRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, fightRepo repository.FightRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		fightRepo:  fightRepo,
	}
}

// UpsertRating records the viewer's score for a fight, replacing any
// earlier score in place. Arguments are checked before storage is touched.
func (s *ratingService) UpsertRating(ctx context.Context, v viewer.Viewer, fightID int64, score int) (*dto.RatingResponse, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}
	if score < models.MinScore || score > models.MaxScore {
		return nil, fmt.Errorf("score must be between %d and %d: %w", models.MinScore, models.MaxScore, shared.ErrInvalidArgument)
	}
	if err := requireFight(ctx, s.fightRepo, fightID); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.Upsert(ctx, v.ID, fightID, score)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRatingResponse(rating), nil
}

// AverageAndViewerRating returns the community mean (0 when unrated) and,
// for an authenticated viewer who has rated, their own score.
func (s *ratingService) AverageAndViewerRating(ctx context.Context, fightID int64, v viewer.Viewer) (*dto.RatingSummaryResponse, error) {
	if err := requireFight(ctx, s.fightRepo, fightID); err != nil {
		return nil, err
	}

	summary, err := s.ratingRepo.Summary(ctx, fightID, v.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRatingSummaryResponse(summary), nil
}
