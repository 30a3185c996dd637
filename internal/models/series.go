package models

// SecondaryRatings is the normalized rating block from the secondary
// provider. Pointer fields are nil when the provider reported "N/A".
// OriginalQuery and CorrectedTitle are set only when the lookup title
// was corrected through a search fallback.
type SecondaryRatings struct {
	Title          string   `json:"title"`
	Year           string   `json:"year"`
	IMDBRating     *float64 `json:"imdb_rating"`
	IMDBVotes      string   `json:"imdb_votes"`
	Metascore      *int     `json:"metascore"`
	RottenTomatoes *string  `json:"rotten_tomatoes"`
	IMDBID         string   `json:"imdb_id"`
	OriginalQuery  string   `json:"original_query,omitempty"`
	CorrectedTitle string   `json:"corrected_title,omitempty"`
}

// SeriesSummary is one enriched entry of a trending page
type SeriesSummary struct {
	ID               int               `json:"id"`
	DisplayName      string            `json:"display_name"`
	Overview         string            `json:"overview"`
	FirstAirDate     string            `json:"first_air_date"`
	PrimaryRating    float64           `json:"primary_rating"`
	PosterURL        *string           `json:"poster_url"`
	BackdropURL      *string           `json:"backdrop_url"`
	Popularity       float64           `json:"popularity"`
	ExternalID       string            `json:"external_id,omitempty"`
	SecondaryRatings *SecondaryRatings `json:"secondary_ratings,omitempty"`
}

// SeriesDetail is the merged single-series record. Seasons is only
// populated when episode-level data was requested.
type SeriesDetail struct {
	ID               int               `json:"id"`
	DisplayName      string            `json:"display_name"`
	OriginalTitle    string            `json:"original_title"`
	Overview         string            `json:"overview"`
	FirstAirDate     string            `json:"first_air_date"`
	LastAirDate      string            `json:"last_air_date"`
	PrimaryRating    float64           `json:"primary_rating"`
	VoteCount        int               `json:"vote_count"`
	SeasonCount      int               `json:"season_count"`
	EpisodeCount     int               `json:"episode_count"`
	Genres           []string          `json:"genres"`
	Networks         []string          `json:"networks"`
	PosterURL        *string           `json:"poster_url"`
	BackdropURL      *string           `json:"backdrop_url"`
	Popularity       float64           `json:"popularity"`
	ExternalID       string            `json:"external_id,omitempty"`
	SecondaryRatings *SecondaryRatings `json:"secondary_ratings,omitempty"`
	Seasons          SeasonRatingGrid  `json:"seasons,omitempty"`
}

// SeasonRatingGrid maps a season number (always > 0, specials are
// excluded) to its episodes in provider order
type SeasonRatingGrid map[int][]EpisodeRating

// EpisodeRating carries the per-episode score and release status.
// Rating and VoteCount are nil for unreleased episodes even when the
// provider supplied provisional values.
type EpisodeRating struct {
	EpisodeNumber int      `json:"episode_number"`
	Title         string   `json:"title"`
	Rating        *float64 `json:"rating"`
	VoteCount     *int     `json:"vote_count"`
	AirDate       string   `json:"air_date,omitempty"`
	IsUnreleased  bool     `json:"is_unreleased"`
}

// TrendingPage is the enriched trending list plus paging info from
// the primary provider
type TrendingPage struct {
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	Results      []SeriesSummary `json:"results"`
}
