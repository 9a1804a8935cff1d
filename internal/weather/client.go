// Package weather is a thin client for the OpenWeatherMap API. Responses
// are passed through untouched; the frontend consumes the upstream shape.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client calls the OpenWeatherMap REST API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds a client with a bounded request timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Snapshot bundles the current conditions and the forecast for a location.
type Snapshot struct {
	Current  json.RawMessage `json:"current"`
	Forecast json.RawMessage `json:"forecast"`
}

// Snapshot fetches current weather and the forecast in one call. An
// upstream non-200 for either half yields an empty object for that half;
// only transport failures surface as errors.
func (c *Client) Snapshot(ctx context.Context, location string) (*Snapshot, error) {
	current, err := c.fetch(ctx, "/weather", location)
	if err != nil {
		return nil, err
	}
	forecast, err := c.fetch(ctx, "/forecast", location)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Current: current, Forecast: forecast}, nil
}

func (c *Client) fetch(ctx context.Context, path, location string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s%s?q=%s&appid=%s&units=metric",
		c.baseURL, path, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return json.RawMessage("{}"), nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
