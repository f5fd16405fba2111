package dto

import (
	"time"

	"fightcard/internal/microservices/http-api/models"
)

// EventRequest is the body of create and update. Promotion defaults to UFC.
type EventRequest struct {
	Title     string    `json:"title" binding:"required,notblank,max=200"`
	Promotion string    `json:"promotion" binding:"max=100"`
	Date      time.Time `json:"date" binding:"required"`
}

func (r *EventRequest) ToModel() *models.Event {
	return &models.Event{
		Title:     r.Title,
		Promotion: r.Promotion,
		Date:      r.Date,
	}
}

type EventResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Promotion string    `json:"promotion"`
	Date      time.Time `json:"date"`
}

func FromModelToEventResponse(e *models.Event) *EventResponse {
	return &EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		Promotion: e.Promotion,
		Date:      e.Date,
	}
}

func FromModelsToEventResponses(list []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModelToEventResponse(&list[i]))
	}
	return out
}
