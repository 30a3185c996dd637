// Package models contains the typed provider responses and the merged
// output records the presentation layer binds to.
package models

// TMDBSearchResult represents a paged search or trending response from TMDB
type TMDBSearchResult struct {
	Page         int          `json:"page"`
	TotalResults int          `json:"total_results"`
	TotalPages   int          `json:"total_pages"`
	Results      []TMDBSeries `json:"results"`
}

// TMDBSeries represents a TV series entry in search and trending results
type TMDBSeries struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int   `json:"genre_ids"`
}

// GetReleaseYear returns the first-air year
func (s *TMDBSeries) GetReleaseYear() string {
	if len(s.FirstAirDate) >= 4 {
		return s.FirstAirDate[:4]
	}
	return ""
}

// TMDBSeriesDetails contains the full structural record for a TV series
type TMDBSeriesDetails struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	OriginalName     string        `json:"original_name"`
	Overview         string        `json:"overview"`
	PosterPath       string        `json:"poster_path"`
	BackdropPath     string        `json:"backdrop_path"`
	FirstAirDate     string        `json:"first_air_date"`
	LastAirDate      string        `json:"last_air_date"`
	VoteAverage      float64       `json:"vote_average"`
	VoteCount        int           `json:"vote_count"`
	Popularity       float64       `json:"popularity"`
	NumberOfSeasons  int           `json:"number_of_seasons"`
	NumberOfEpisodes int           `json:"number_of_episodes"`
	Status           string        `json:"status"`
	Genres           []TMDBGenre   `json:"genres"`
	Networks         []TMDBNetwork `json:"networks"`
	Seasons          []TMDBSeason  `json:"seasons"`
}

// TMDBGenre represents a genre from TMDB
type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBNetwork represents a broadcasting network from TMDB
type TMDBNetwork struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
	Country  string `json:"origin_country"`
}

// TMDBSeason is the season stub embedded in a series details response
type TMDBSeason struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// TMDBEpisode represents a single episode from a season listing
type TMDBEpisode struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

// TMDBExternalIDs carries the cross-reference identifiers for a series
type TMDBExternalIDs struct {
	ID     int    `json:"id"`
	IMDBID string `json:"imdb_id"`
	TVDBID int    `json:"tvdb_id"`
}
