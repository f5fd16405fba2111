package repository

import (
	"context"
	"iter"

	"fightcard/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.CommentView, error)
	StreamByFight(ctx context.Context, fightID int64) iter.Seq2[models.CommentView, error]
	CountByFight(ctx context.Context, fightID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// commentViewColumns joins the author's username at read time.
const commentViewColumns = "comments.id, comments.fight_id, comments.content, comments.created_at, users.username"

// Create appends a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return mapError("create comment", err)
	}
	return nil
}

// GetByID retrieves a comment with its author's username
func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.CommentView, error) {
	var view models.CommentView
	err := r.db.WithContext(ctx).
		Table("comments").
		Select(commentViewColumns).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", commentID).
		Take(&view).Error
	if err != nil {
		return nil, mapError("get comment", err)
	}
	return &view, nil
}

// StreamByFight yields the comments of a fight, most recent first. Each
// range over the returned sequence runs a fresh query; nothing is kept
// between iterations. A storage error is yielded once as the final element.
func (r *commentRepository) StreamByFight(ctx context.Context, fightID int64) iter.Seq2[models.CommentView, error] {
	return func(yield func(models.CommentView, error) bool) {
		rows, err := r.db.WithContext(ctx).
			Table("comments").
			Select(commentViewColumns).
			Joins("JOIN users ON users.id = comments.user_id").
			Where("comments.fight_id = ?", fightID).
			Order("comments.created_at DESC, comments.id DESC").
			Rows()
		if err != nil {
			yield(models.CommentView{}, mapError("list comments", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var view models.CommentView
			if err := r.db.ScanRows(rows, &view); err != nil {
				yield(models.CommentView{}, mapError("scan comment", err))
				return
			}
			if !yield(view, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.CommentView{}, mapError("list comments", err))
		}
	}
}

// CountByFight counts the comments of a fight
func (r *commentRepository) CountByFight(ctx context.Context, fightID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("fight_id = ?", fightID).Count(&count).Error
	if err != nil {
		return 0, mapError("count comments", err)
	}
	return count, nil
}
