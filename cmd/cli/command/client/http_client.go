package client

// http_client.go = talks to the fight card API over HTTP.

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fightcard/cmd/cli/dto"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// send marshals body (if any), checks the status and decodes into out (if any).
func (c *HTTPClient) send(method, path string, body, out any, want int) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode != want {
		var e dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Accounts

// Register creates the account; the server only sets the session as a
// cookie, so callers log in afterwards to get a bearer token.
func (c *HTTPClient) Register(request *dto.RegisterRequest) (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.send(http.MethodPost, "/api/register", request, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *dto.LoginRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.send(http.MethodPost, "/api/login", request, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Logout() error {
	return c.send(http.MethodPost, "/api/logout", nil, nil, http.StatusOK)
}

func (c *HTTPClient) Me() (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.send(http.MethodGet, "/api/user", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// Fights

func (c *HTTPClient) ListFights(eventID *int64) ([]dto.FightResponse, error) {
	path := "/api/fights"
	if eventID != nil {
		path += "?" + url.Values{"eventId": {strconv.FormatInt(*eventID, 10)}}.Encode()
	}
	var result []dto.FightResponse
	if err := c.send(http.MethodGet, path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetFight(id int64) (*dto.FightResponse, error) {
	var result dto.FightResponse
	if err := c.send(http.MethodGet, fmt.Sprintf("/api/fights/%d", id), nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateFight(request *dto.FightRequest) (*dto.FightResponse, error) {
	var result dto.FightResponse
	if err := c.send(http.MethodPost, "/api/fights", request, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteFight(id int64) error {
	return c.send(http.MethodDelete, fmt.Sprintf("/api/fights/%d", id), nil, nil, http.StatusOK)
}

// Events

func (c *HTTPClient) ListEvents() ([]dto.EventResponse, error) {
	var result []dto.EventResponse
	if err := c.send(http.MethodGet, "/api/events", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateEvent(request *dto.EventRequest) (*dto.EventResponse, error) {
	var result dto.EventResponse
	if err := c.send(http.MethodPost, "/api/events", request, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ratings

func (c *HTTPClient) RateFight(fightID int64, rating int) (*dto.RatingResponse, error) {
	var result dto.RatingResponse
	body := &dto.RatingRequest{FightID: fightID, Rating: rating}
	if err := c.send(http.MethodPost, "/api/ratings", body, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetRatingSummary(fightID int64) (*dto.RatingSummaryResponse, error) {
	var result dto.RatingSummaryResponse
	if err := c.send(http.MethodGet, fmt.Sprintf("/api/fights/%d/rating", fightID), nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// Comments

func (c *HTTPClient) ListComments(fightID int64) ([]dto.CommentResponse, error) {
	var result []dto.CommentResponse
	if err := c.send(http.MethodGet, fmt.Sprintf("/api/fights/%d/comments", fightID), nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) PostComment(fightID int64, content string) (*dto.CommentResponse, error) {
	var result dto.CommentResponse
	body := &dto.CommentRequest{FightID: fightID, Content: content}
	if err := c.send(http.MethodPost, "/api/comments", body, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}
