package service

import (
	"context"
	"iter"
	"time"

	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/viewer"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, userID string, fightID int64, score int) (*models.Rating, error) {
	args := m.Called(ctx, userID, fightID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUserAndFight(ctx context.Context, userID string, fightID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Summary(ctx context.Context, fightID int64, viewerID string) (*models.RatingSummary, error) {
	args := m.Called(ctx, fightID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingSummary), args.Error(1)
}

func (m *MockRatingRepository) CountByFight(ctx context.Context, fightID int64) (int64, error) {
	args := m.Called(ctx, fightID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.CommentView, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentView), args.Error(1)
}

func (m *MockCommentRepository) StreamByFight(ctx context.Context, fightID int64) iter.Seq2[models.CommentView, error] {
	args := m.Called(ctx, fightID)
	return args.Get(0).(iter.Seq2[models.CommentView, error])
}

func (m *MockCommentRepository) CountByFight(ctx context.Context, fightID int64) (int64, error) {
	args := m.Called(ctx, fightID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFightRepository mocks the FightRepository interface
type MockFightRepository struct {
	mock.Mock
}

func (m *MockFightRepository) ListWithRatings(ctx context.Context, viewerID string, eventID *int64) ([]models.FightWithRating, error) {
	args := m.Called(ctx, viewerID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FightWithRating), args.Error(1)
}

func (m *MockFightRepository) GetWithRating(ctx context.Context, viewerID string, id int64) (*models.FightWithRating, error) {
	args := m.Called(ctx, viewerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FightWithRating), args.Error(1)
}

func (m *MockFightRepository) GetByID(ctx context.Context, id int64) (*models.Fight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Fight), args.Error(1)
}

func (m *MockFightRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFightRepository) Create(ctx context.Context, f *models.Fight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFightRepository) Update(ctx context.Context, id int64, f *models.Fight) error {
	args := m.Called(ctx, id, f)
	return args.Error(0)
}

func (m *MockFightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository mocks the EventRepository interface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, e *models.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, id int64, e *models.Event) error {
	args := m.Called(ctx, id, e)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionService mocks the SessionService interface
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Issue(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (viewer.Viewer, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(viewer.Viewer), args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
