package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/alvarorichard/seriescope/internal/models"
	"github.com/alvarorichard/seriescope/internal/util"
)

const (
	// OMDb API base URL
	OMDbBaseURL = "https://www.omdbapi.com"

	// Name of the critic aggregate inside the OMDb Ratings list
	rottenTomatoesSource = "Rotten Tomatoes"

	// Sentinel OMDb uses for missing values
	omdbNotAvailable = "N/A"
)

// OMDbClient is the ratings client for the secondary provider. A
// provider miss ("Response": "False") is an empty result, not an
// error; only transport failures propagate.
type OMDbClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewOMDbClient creates a new OMDb client with the given API key.
// Get a free key at https://www.omdbapi.com/apikey.aspx
func NewOMDbClient(apiKey string) (*OMDbClient, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: "OMDb"}
	}

	return &OMDbClient{
		client:  util.APIClient(),
		apiKey:  apiKey,
		baseURL: OMDbBaseURL,
	}, nil
}

// SearchByTitle searches for TV series by title. A miss returns an
// empty slice, not an error.
func (c *OMDbClient) SearchByTitle(title, year string) ([]models.OMDbMatch, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("s", title)
	params.Set("type", "series")
	if year != "" {
		params.Set("y", year)
	}

	body, err := c.makeRequest(params)
	if err != nil {
		return nil, fmt.Errorf("OMDb search failed: %w", err)
	}

	var result models.OMDbSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse OMDb response: %w", err)
	}

	if result.Response == "False" {
		util.Debug("OMDb search found nothing", "title", title, "reason", result.Error)
		return nil, nil
	}

	return result.Search, nil
}

// GetSeries gets the full detail record by exact title or IMDb ID.
// Exactly one of title/imdbID must be supplied. A miss returns nil,
// not an error.
func (c *OMDbClient) GetSeries(title, imdbID string) (*models.OMDbSeries, error) {
	if (title == "") == (imdbID == "") {
		return nil, errors.New("exactly one of title or imdbID must be provided")
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("type", "series")
	params.Set("plot", "short")
	params.Set("tomatoes", "true")
	if title != "" {
		params.Set("t", title)
	} else {
		params.Set("i", imdbID)
	}

	body, err := c.makeRequest(params)
	if err != nil {
		return nil, fmt.Errorf("OMDb get failed: %w", err)
	}

	var series models.OMDbSeries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, fmt.Errorf("failed to parse OMDb response: %w", err)
	}

	if series.Response == "False" {
		util.Debug("OMDb has no record", "title", title, "imdbID", imdbID, "reason", series.Error)
		return nil, nil
	}

	return &series, nil
}

// GetRatings gets the normalized rating block by title or IMDb ID.
// When only a title is given it is first resolved through a search so
// that typos still land on the right series; the substitution is
// recorded in OriginalQuery/CorrectedTitle when the titles differ.
// Returns nil when the provider has no record.
func (c *OMDbClient) GetRatings(title, imdbID string) (*models.SecondaryRatings, error) {
	originalQuery := title
	correctedTitle := ""

	if title != "" && imdbID == "" {
		matches, err := c.SearchByTitle(title, "")
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			// Resolve by the best match's IMDb ID instead of the
			// possibly misspelled title
			imdbID = matches[0].IMDBID
			correctedTitle = matches[0].Title
		}
	}

	lookupTitle := title
	if imdbID != "" {
		lookupTitle = ""
	}
	series, err := c.GetSeries(lookupTitle, imdbID)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, nil
	}

	ratings := &models.SecondaryRatings{
		Title:          series.Title,
		Year:           series.Year,
		IMDBRating:     parseOMDbFloat(series.IMDBRating),
		IMDBVotes:      series.IMDBVotes,
		Metascore:      parseOMDbInt(series.Metascore),
		RottenTomatoes: findRatingSource(series.Ratings, rottenTomatoesSource),
		IMDBID:         series.IMDBID,
	}

	if originalQuery != "" && correctedTitle != "" &&
		!strings.EqualFold(originalQuery, correctedTitle) {
		ratings.OriginalQuery = originalQuery
		ratings.CorrectedTitle = correctedTitle
	}

	return ratings, nil
}

// makeRequest performs an HTTP request to OMDb API
func (c *OMDbClient) makeRequest(params url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
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
		return nil, fmt.Errorf("OMDb API returned status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// parseOMDbFloat maps "N/A" and malformed numbers to nil
func parseOMDbFloat(value string) *float64 {
	if value == "" || value == omdbNotAvailable {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseOMDbInt maps "N/A" and malformed numbers to nil
func parseOMDbInt(value string) *int {
	if value == "" || value == omdbNotAvailable {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

// findRatingSource scans the named rating sources for the one
// matching the target aggregator
func findRatingSource(ratings []models.OMDbRating, source string) *string {
	for _, r := range ratings {
		if r.Source == source {
			v := r.Value
			return &v
		}
	}
	return nil
}
