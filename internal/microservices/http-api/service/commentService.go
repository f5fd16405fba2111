package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/microservices/http-api/repository"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"
)

type CommentService interface {
	AddComment(ctx context.Context, v viewer.Viewer, fightID int64, content string) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, fightID int64) (iter.Seq2[models.CommentView, error], error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	fightRepo   repository.FightRepository
}

func NewCommentService(commentRepo repository.CommentRepository, fightRepo repository.FightRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		fightRepo:   fightRepo,
	}
}

// AddComment appends a comment from the viewer. Content is stored trimmed.
func (s *commentService) AddComment(ctx context.Context, v viewer.Viewer, fightID int64, content string) (*dto.CommentResponse, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment is empty: %w", shared.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(content) > dto.MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds %d characters: %w", dto.MaxCommentLength, shared.ErrInvalidArgument)
	}
	if err := requireFight(ctx, s.fightRepo, fightID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  v.ID,
		FightID: fightID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "comment_added", "comment_id", comment.ID, "fight_id", fightID, "user_id", v.ID)

	// Reload with the author's username
	view, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(view), nil
}

// ListComments returns the fight's comments, most recent first. The
// sequence queries lazily and may be ranged more than once.
func (s *commentService) ListComments(ctx context.Context, fightID int64) (iter.Seq2[models.CommentView, error], error) {
	if err := requireFight(ctx, s.fightRepo, fightID); err != nil {
		return nil, err
	}
	return s.commentRepo.StreamByFight(ctx, fightID), nil
}
