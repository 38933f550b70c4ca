package recordstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

// APIError is a non-success response from the record store.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, e.Message)
}

// Unwrap maps well-known statuses onto the domain sentinels.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return models.ErrRecordNotFound
	case http.StatusConflict:
		return models.ErrDuplicateRecord
	default:
		return nil
	}
}

// Client talks to the /records HTTP API.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a record store client rooted at baseURL.
func NewClient(baseURL, username, password string) *Client {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	if username != "" {
		restyClient.SetBasicAuth(username, password)
	}

	return &Client{httpClient: restyClient}
}

// errorBody is the failure payload; either field may carry the message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// List fetches every record. Ordering is whatever the store returns.
func (c *Client) List(ctx context.Context) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&records).
		SetError(&errorBody{}).
		Get("/records")
	if err := check(resp, err, "fetch records"); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.DailyRecord{}
	}
	return records, nil
}

// Create stores a new record carrying a caller-generated id.
func (c *Client) Create(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error) {
	var stored models.DailyRecord
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(record).
		SetResult(&stored).
		SetError(&errorBody{}).
		Post("/records")
	if err := check(resp, err, "save record"); err != nil {
		return models.DailyRecord{}, err
	}
	return stored, nil
}

// Update replaces the full record with the same id.
func (c *Client) Update(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error) {
	var stored models.DailyRecord
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(record).
		SetResult(&stored).
		SetError(&errorBody{}).
		Put("/records/" + url.PathEscape(record.ID))
	if err := check(resp, err, "update record"); err != nil {
		return models.DailyRecord{}, err
	}
	return stored, nil
}

// Delete removes a record. Any non-error status counts as success.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(&errorBody{}).
		Delete("/records/" + url.PathEscape(id))
	return check(resp, err, "delete record")
}

func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}

	message := http.StatusText(resp.StatusCode())
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		switch {
		case body.Error != "":
			message = body.Error
		case body.Message != "":
			message = body.Message
		}
	}
	return &APIError{Op: op, StatusCode: resp.StatusCode(), Message: message}
}
