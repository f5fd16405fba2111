package handler

import (
	"context"
	"iter"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/viewer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// stubSessions resolves fixed bearer tokens to viewers; anything else is anonymous.
type stubSessions map[string]viewer.Viewer

func (s stubSessions) Issue(context.Context, *models.User) (string, error) { return "", nil }
func (s stubSessions) Revoke(context.Context, string) error                { return nil }
func (s stubSessions) Resolve(_ context.Context, token string) (viewer.Viewer, error) {
	return s[token], nil
}

var alice = viewer.Viewer{ID: "user-a", Username: "alice"}

// routes is implemented by every handler.
type routes interface {
	RegisterRoutes(public, gated *gin.RouterGroup)
}

// setupRouter mounts handlers the way the server does: session resolution
// on everything, RequireViewer on the gated group.
func setupRouter(handlers ...routes) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Session(stubSessions{"alice-token": alice}))
	gated := api.Group("", middleware.RequireViewer())
	for _, h := range handlers {
		h.RegisterRoutes(api, gated)
	}
	return r
}

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) UpsertRating(ctx context.Context, v viewer.Viewer, fightID int64, score int) (*dto.RatingResponse, error) {
	args := m.Called(ctx, v, fightID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) AverageAndViewerRating(ctx context.Context, fightID int64, v viewer.Viewer) (*dto.RatingSummaryResponse, error) {
	args := m.Called(ctx, fightID, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingSummaryResponse), args.Error(1)
}

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, v viewer.Viewer, fightID int64, content string) (*dto.CommentResponse, error) {
	args := m.Called(ctx, v, fightID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) ListComments(ctx context.Context, fightID int64) (iter.Seq2[models.CommentView, error], error) {
	args := m.Called(ctx, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq2[models.CommentView, error]), args.Error(1)
}

// MockFightService mocks the FightService interface
type MockFightService struct {
	mock.Mock
}

func (m *MockFightService) ListFights(ctx context.Context, v viewer.Viewer, eventID *int64) ([]dto.FightResponse, error) {
	args := m.Called(ctx, v, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.FightResponse), args.Error(1)
}

func (m *MockFightService) GetFight(ctx context.Context, v viewer.Viewer, id int64) (*dto.FightResponse, error) {
	args := m.Called(ctx, v, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FightResponse), args.Error(1)
}

func (m *MockFightService) CreateFight(ctx context.Context, v viewer.Viewer, req *dto.FightRequest) (*dto.FightResponse, error) {
	args := m.Called(ctx, v, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FightResponse), args.Error(1)
}

func (m *MockFightService) UpdateFight(ctx context.Context, v viewer.Viewer, id int64, req *dto.FightRequest) (*dto.FightResponse, error) {
	args := m.Called(ctx, v, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FightResponse), args.Error(1)
}

func (m *MockFightService) DeleteFight(ctx context.Context, v viewer.Viewer, id int64) error {
	args := m.Called(ctx, v, id)
	return args.Error(0)
}

// MockEventService mocks the EventService interface
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EventResponse), args.Error(1)
}

func (m *MockEventService) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventResponse), args.Error(1)
}

func (m *MockEventService) CreateEvent(ctx context.Context, v viewer.Viewer, req *dto.EventRequest) (*dto.EventResponse, error) {
	args := m.Called(ctx, v, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventResponse), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, v viewer.Viewer, id int64, req *dto.EventRequest) (*dto.EventResponse, error) {
	args := m.Called(ctx, v, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventResponse), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, v viewer.Viewer, id int64) error {
	args := m.Called(ctx, v, id)
	return args.Error(0)
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, v viewer.Viewer) (*models.User, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
