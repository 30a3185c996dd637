package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTMDBClient(t *testing.T, handler http.HandlerFunc) *TMDBClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewTMDBClient("test-key")
	require.NoError(t, err)
	client.baseURL = srv.URL
	return client
}

func TestNewTMDBClientRequiresKey(t *testing.T) {
	_, err := NewTMDBClient("")
	require.Error(t, err)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "TMDB", confErr.Provider)
}

func TestTMDBSearchTV(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "breaking bad", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_results": 2,
			"total_pages": 1,
			"results": [
				{"id": 1396, "name": "Breaking Bad", "vote_average": 8.9, "first_air_date": "2008-01-20"},
				{"id": 62016, "name": "Breaking Boston", "vote_average": 5.2}
			]
		}`))
	})

	results, err := client.SearchTV("breaking bad")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 1396, results[0].ID)
	assert.Equal(t, "Breaking Bad", results[0].Name)
	assert.Equal(t, "2008", results[0].GetReleaseYear())
}

func TestTMDBGetTVDetails(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1396", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 1396,
			"name": "Breaking Bad",
			"original_name": "Breaking Bad",
			"number_of_seasons": 5,
			"number_of_episodes": 62,
			"vote_average": 8.9,
			"vote_count": 12000,
			"genres": [{"id": 18, "name": "Drama"}],
			"networks": [{"id": 174, "name": "AMC"}],
			"seasons": [
				{"season_number": 0, "episode_count": 10},
				{"season_number": 1, "episode_count": 7}
			]
		}`))
	})

	details, err := client.GetTVDetails(1396)
	require.NoError(t, err)

	assert.Equal(t, "Breaking Bad", details.Name)
	assert.Equal(t, 5, details.NumberOfSeasons)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "Drama", details.Genres[0].Name)
	require.Len(t, details.Seasons, 2)
	assert.Equal(t, 0, details.Seasons[0].SeasonNumber)
}

func TestTMDBGetExternalIDs(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1396/external_ids", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 1396, "imdb_id": "tt0903747", "tvdb_id": 81189}`))
	})

	ids, err := client.GetExternalIDs(1396)
	require.NoError(t, err)
	assert.Equal(t, "tt0903747", ids.IMDBID)
}

func TestTMDBGetTrendingWindowFallback(t *testing.T) {
	var gotPath string
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"page": 2, "total_pages": 10, "total_results": 200, "results": []}`))
	})

	// An invalid window is not an error, it falls back to "week"
	result, err := client.GetTrending("month", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "/trending/tv/week", gotPath)
	assert.Equal(t, 2, result.Page)

	_, err = client.GetTrending("day", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "/trending/tv/day", gotPath)
}

func TestTMDBGetTrendingHonorsLimit(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 3,
			"results": [
				{"id": 100, "name": "First"},
				{"id": 101, "name": "Second"},
				{"id": 102, "name": "Third"}
			]
		}`))
	})

	result, err := client.GetTrending("week", 1, 2)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, 100, result.Results[0].ID)
	assert.Equal(t, 101, result.Results[1].ID)

	// A zero limit means the whole page
	result, err = client.GetTrending("week", 1, 0)
	require.NoError(t, err)
	assert.Len(t, result.Results, 3)
}

func TestTMDBGetSeasonEpisodes(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1396/season/2", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"episodes": [
				{"episode_number": 1, "name": "Seven Thirty-Seven", "air_date": "2009-03-08", "vote_average": 8.2, "vote_count": 120},
				{"episode_number": 2, "name": "Grilled", "air_date": "2009-03-15", "vote_average": 8.7, "vote_count": 115}
			]
		}`))
	})

	episodes, err := client.GetSeasonEpisodes(1396, 2)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, "Grilled", episodes[1].Name)
	assert.Equal(t, "2009-03-15", episodes[1].AirDate)
}

func TestTMDBTransportErrorPropagates(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.SearchTV("anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	_, err = client.GetTVDetails(1)
	require.Error(t, err)

	_, err = client.GetSeasonEpisodes(1, 1)
	require.Error(t, err)
}
