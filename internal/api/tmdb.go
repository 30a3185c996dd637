// Package api provides the TMDB and OMDb provider clients
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/alvarorichard/seriescope/internal/models"
	"github.com/alvarorichard/seriescope/internal/util"
)

const (
	// TMDB API base URL
	TMDBBaseURL = "https://api.themoviedb.org/3"
)

// TMDBClient is the catalog client for the primary metadata provider.
// It supplies series identity, structure and the primary rating; any
// transport failure propagates to the caller untouched.
type TMDBClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewTMDBClient creates a new TMDB client with the given API key.
// Get a free key at https://www.themoviedb.org/settings/api
func NewTMDBClient(apiKey string) (*TMDBClient, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: "TMDB"}
	}

	return &TMDBClient{
		client:  util.APIClient(),
		apiKey:  apiKey,
		baseURL: TMDBBaseURL,
	}, nil
}

// SearchTV searches for TV series by title. The provider's ordering is
// trusted as-is; the first result is the most relevant one.
func (c *TMDBClient) SearchTV(query string) ([]models.TMDBSeries, error) {
	endpoint := fmt.Sprintf("%s/search/tv?query=%s&include_adult=false&language=en-US&page=1",
		c.baseURL, url.QueryEscape(query))

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("TMDB TV search failed: %w", err)
	}

	var result models.TMDBSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse TMDB response: %w", err)
	}

	return result.Results, nil
}

// GetTVDetails gets the structural record for a TV series
func (c *TMDBClient) GetTVDetails(tvID int) (*models.TMDBSeriesDetails, error) {
	endpoint := fmt.Sprintf("%s/tv/%d?language=en-US", c.baseURL, tvID)

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get TV details: %w", err)
	}

	var details models.TMDBSeriesDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse TV details: %w", err)
	}

	return &details, nil
}

// GetExternalIDs gets the cross-reference identifiers for a TV series,
// including the IMDb ID used to bridge to the ratings provider
func (c *TMDBClient) GetExternalIDs(tvID int) (*models.TMDBExternalIDs, error) {
	endpoint := fmt.Sprintf("%s/tv/%d/external_ids", c.baseURL, tvID)

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get external IDs: %w", err)
	}

	var ids models.TMDBExternalIDs
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse external IDs: %w", err)
	}

	return &ids, nil
}

// GetTrending gets one page of trending TV series, capped at limit
// entries when limit is positive. Valid windows are "day" and "week";
// anything else falls back to "week" with a warning.
func (c *TMDBClient) GetTrending(timeWindow string, page, limit int) (*models.TMDBSearchResult, error) {
	if timeWindow != "day" && timeWindow != "week" {
		util.Warn("Invalid time window, using default", "window", timeWindow, "default", "week")
		timeWindow = "week"
	}
	if page < 1 {
		page = 1
	}

	endpoint := fmt.Sprintf("%s/trending/tv/%s?language=en-US&page=%d", c.baseURL, timeWindow, page)

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending: %w", err)
	}

	var result models.TMDBSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse trending response: %w", err)
	}

	if limit > 0 && len(result.Results) > limit {
		result.Results = result.Results[:limit]
	}

	return &result, nil
}

// GetSeasonEpisodes gets the episodes of one season in provider order
func (c *TMDBClient) GetSeasonEpisodes(tvID, seasonNumber int) ([]models.TMDBEpisode, error) {
	endpoint := fmt.Sprintf("%s/tv/%d/season/%d?language=en-US", c.baseURL, tvID, seasonNumber)

	body, err := c.makeRequest(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get season episodes: %w", err)
	}

	var result struct {
		Episodes []models.TMDBEpisode `json:"episodes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse episodes: %w", err)
	}

	return result.Episodes, nil
}

// makeRequest performs an authenticated request to TMDB API
func (c *TMDBClient) makeRequest(endpoint string) ([]byte, error) {
	separator := "?"
	if u, err := url.Parse(endpoint); err == nil && u.RawQuery != "" {
		separator = "&"
	}
	endpointWithKey := endpoint + separator + "api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequest(http.MethodGet, endpointWithKey, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API returned status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
