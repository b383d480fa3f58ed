package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/handler"
	"github.com/osse101/ValleyCompanion_Go/internal/planner"
)

// ErrNotFound is returned for any 404 from the API
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response carrying the server's error message
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// APIClient handles communication with the Valley Companion API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport errors and 5xx
// responses with exponential backoff. Responses below 500 are returned as is.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + rand.N(maxJitter)
			slog.Default().Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set(headerAccept, contentTypeJSON)
		req.Header.Set(headerUserAgent, userAgent)
		if body != nil {
			req.Header.Set(headerContentType, contentTypeJSON)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Default().Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = decodeError(resp)
		resp.Body.Close()
		slog.Default().Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeError reads the {"error": "..."} payload of a failed response
func decodeError(resp *http.Response) error {
	var payload handler.ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, &payload)
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	}
	return apiErr
}

// getJSON issues a GET and decodes a 200 response into out
func (c *APIClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// values builds query parameters, skipping empty ones
func values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			v.Set(pairs[i], pairs[i+1])
		}
	}
	return v
}

// Health reports whether the API answers its liveness probe
func (c *APIClient) Health(ctx context.Context) error {
	var out map[string]string
	return c.getJSON(ctx, PathHealthz, nil, &out)
}

// Version returns the API build information
func (c *APIClient) Version(ctx context.Context) (*handler.VersionInfo, error) {
	var out handler.VersionInfo
	if err := c.getJSON(ctx, PathVersion, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCrops returns crops, optionally filtered by season
func (c *APIClient) ListCrops(ctx context.Context, season string) ([]domain.Crop, error) {
	var out []domain.Crop
	err := c.getJSON(ctx, PathCrops, values(handler.ParamSeason, season), &out)
	return out, err
}

// GetCrop returns a single crop. Unknown ids yield ErrNotFound and domain.ErrCropNotFound.
func (c *APIClient) GetCrop(ctx context.Context, id string) (*domain.Crop, error) {
	var out domain.Crop
	if err := c.getJSON(ctx, PathCrops+"/"+url.PathEscape(id), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrCropNotFound, err)
		}
		return nil, err
	}
	return &out, nil
}

// FishQuery holds the optional fish filters
type FishQuery struct {
	Season   string
	Weather  string
	Location string
}

// ListFish returns fish matching q
func (c *APIClient) ListFish(ctx context.Context, q FishQuery) ([]domain.Fish, error) {
	var out []domain.Fish
	params := values(
		handler.ParamSeason, q.Season,
		handler.ParamWeather, q.Weather,
		handler.ParamLocation, q.Location,
	)
	err := c.getJSON(ctx, PathFish, params, &out)
	return out, err
}

// ListNPCs returns every NPC
func (c *APIClient) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	var out []domain.NPC
	err := c.getJSON(ctx, PathNPCs, nil, &out)
	return out, err
}

// GetNPC looks an NPC up by name, case-insensitively
func (c *APIClient) GetNPC(ctx context.Context, name string) (*domain.NPC, error) {
	var out domain.NPC
	if err := c.getJSON(ctx, PathNPCs, values(handler.ParamName, name), &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrNPCNotFound, err)
		}
		return nil, err
	}
	return &out, nil
}

// ListRecipes returns recipes, optionally filtered by category
func (c *APIClient) ListRecipes(ctx context.Context, category string) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := c.getJSON(ctx, PathRecipes, values(handler.ParamCategory, category), &out)
	return out, err
}

// ListMiningLocations returns every mining location
func (c *APIClient) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	var out []domain.MiningLocation
	err := c.getJSON(ctx, PathMining, nil, &out)
	return out, err
}

// ListBundles returns bundles, optionally restricted to one room
func (c *APIClient) ListBundles(ctx context.Context, room string) ([]domain.Bundle, error) {
	var out []domain.Bundle
	err := c.getJSON(ctx, PathBundles, values(handler.ParamRoom, room), &out)
	return out, err
}

// Search runs a name search across recipes, fish and crops
func (c *APIClient) Search(ctx context.Context, query string) ([]catalog.SearchResult, error) {
	var out handler.SearchResponse
	if err := c.getJSON(ctx, PathSearch, url.Values{handler.ParamQuery: {query}}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// PlannerSummary asks the API to price a plan
func (c *APIClient) PlannerSummary(ctx context.Context, items []handler.PlannerItemRequest) (*planner.Summary, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, PathPlannerSummary, handler.PlannerSummaryRequest{Items: items})
	if err != nil {
		return nil, err
	}
	var out planner.Summary
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
