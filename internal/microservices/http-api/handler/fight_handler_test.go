package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListFights_ViewerOverlay(t *testing.T) {
	svc := new(MockFightService)
	router := setupRouter(NewFightHandler(svc))

	date := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	four := 4
	rows := func(userRating *int) []dto.FightResponse {
		return []dto.FightResponse{
			{ID: 10, Title: "Pereira vs Hill", Fighter1: "Pereira", Fighter2: "Hill", Date: date, AverageRating: 3, RatingCount: 2, UserRating: userRating},
		}
	}
	svc.On("ListFights", mock.Anything, alice, (*int64)(nil)).Return(rows(&four), nil)
	svc.On("ListFights", mock.Anything, viewer.Anonymous, (*int64)(nil)).Return(rows(nil), nil)

	w := do(t, router, http.MethodGet, "/api/fights", nil, "alice-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id":10,"eventId":null,"title":"Pereira vs Hill","fighter1":"Pereira","fighter2":"Hill",
		"date":"2024-03-09T22:00:00Z","averageRating":3,"ratingCount":2,"userRating":4
	}]`, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/fights", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var anon []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anon))
	require.Len(t, anon, 1)
	value, present := anon[0]["userRating"]
	assert.True(t, present, "userRating must be serialized as null, not omitted")
	assert.Nil(t, value)
}

func TestListFights_ByEvent(t *testing.T) {
	svc := new(MockFightService)
	router := setupRouter(NewFightHandler(svc))

	svc.On("ListFights", mock.Anything, viewer.Anonymous, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 7
	})).Return([]dto.FightResponse{}, nil)

	w := do(t, router, http.MethodGet, "/api/fights?eventId=7", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/fights?eventId=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFight_NotFound(t *testing.T) {
	svc := new(MockFightService)
	router := setupRouter(NewFightHandler(svc))
	svc.On("GetFight", mock.Anything, viewer.Anonymous, int64(99)).Return(nil, fmt.Errorf("get fight: %w", shared.ErrNotFound))

	w := do(t, router, http.MethodGet, "/api/fights/99", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFightMutations(t *testing.T) {
	svc := new(MockFightService)
	router := setupRouter(NewFightHandler(svc))

	body := gin.H{"fighter1": "Pereira", "fighter2": "Hill", "date": "2024-04-13T22:00:00Z"}
	svc.On("CreateFight", mock.Anything, alice, mock.AnythingOfType("*dto.FightRequest")).
		Return(&dto.FightResponse{ID: 1, Title: "Pereira vs Hill"}, nil)
	svc.On("UpdateFight", mock.Anything, alice, int64(1), mock.AnythingOfType("*dto.FightRequest")).
		Return(&dto.FightResponse{ID: 1, Title: "Pereira vs Hill"}, nil)
	svc.On("DeleteFight", mock.Anything, alice, int64(1)).Return(nil)

	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodPost, "/api/fights", body, "").Code)
	assert.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/fights", body, "alice-token").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPut, "/api/fights/1", body, "alice-token").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/api/fights/1", nil, "alice-token").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodDelete, "/api/fights/1", nil, "").Code)

	missing := gin.H{"fighter1": "Pereira", "date": "2024-04-13T22:00:00Z"}
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/api/fights", missing, "alice-token").Code)

	svc.AssertNumberOfCalls(t, "CreateFight", 1)
	svc.AssertNumberOfCalls(t, "DeleteFight", 1)
}
