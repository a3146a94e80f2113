package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
)

// Client is a small typed client for the bucket list API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ExperienceQuery mirrors the filter state of the explore screen.
type ExperienceQuery struct {
	Filter string
	Query  string
	Limit  int64
}

// Login authenticates and stores the bearer token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}
	c.Token = payload.Token
	return nil
}

// ListExperiences runs the filtered catalogue query.
func (c *Client) ListExperiences(ctx context.Context, q ExperienceQuery) ([]models.Experience, error) {
	params := url.Values{}
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}
	if q.Query != "" {
		params.Set("query", q.Query)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.FormatInt(q.Limit, 10))
	}

	var experiences []models.Experience
	if err := c.get(ctx, "/api/experience", params, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

// ListBucketItems fetches the joined bucket list views.
func (c *Client) ListBucketItems(ctx context.Context, userID string) ([]models.BucketListView, error) {
	params := url.Values{}
	if userID != "" {
		params.Set("user_id", userID)
	}

	var views []models.BucketListView
	if err := c.get(ctx, "/api/items", params, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}
