// Package series merges the primary catalog provider and the secondary
// ratings provider into unified TV-series records
package series

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/alvarorichard/seriescope/internal/models"
	"github.com/alvarorichard/seriescope/internal/util"
)

// enrichWorkers bounds the per-item enrichment and per-season fetch
// goroutines
const enrichWorkers = 4

// NotFoundError indicates the catalog has no series matching a title
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("series %q not found", e.Title)
}

// Catalog is the contract of the primary metadata provider
type Catalog interface {
	SearchTV(query string) ([]models.TMDBSeries, error)
	GetTVDetails(tvID int) (*models.TMDBSeriesDetails, error)
	GetExternalIDs(tvID int) (*models.TMDBExternalIDs, error)
	GetTrending(timeWindow string, page, limit int) (*models.TMDBSearchResult, error)
	GetSeasonEpisodes(tvID, seasonNumber int) ([]models.TMDBEpisode, error)
}

// Ratings is the contract of the secondary ratings provider
type Ratings interface {
	GetRatings(title, imdbID string) (*models.SecondaryRatings, error)
}

// Reconciler orchestrates both providers. The catalog is authoritative
// for identity and structure; ratings are best-effort enrichment and a
// ratings failure never aborts a catalog result.
type Reconciler struct {
	catalog Catalog
	ratings Ratings
}

// NewReconciler creates a Reconciler from already-constructed provider
// clients
func NewReconciler(catalog Catalog, ratings Ratings) *Reconciler {
	return &Reconciler{
		catalog: catalog,
		ratings: ratings,
	}
}

// GetSeriesDetail resolves a free-text title to the merged detail
// record. Returns NotFoundError when the catalog search is empty.
func (r *Reconciler) GetSeriesDetail(title string) (*models.SeriesDetail, error) {
	match, err := r.resolve(title)
	if err != nil {
		return nil, err
	}

	structural, err := r.catalog.GetTVDetails(match.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching details for %q", title)
	}

	detail := buildDetail(structural)
	detail.ExternalID, detail.SecondaryRatings = r.secondary(structural.ID)

	return detail, nil
}

// GetTrendingList fetches one trending page and enriches up to limit
// entries with secondary ratings. Enrichment of each entry is
// independent: one entry failing degrades only that entry, and the
// output keeps the provider's rank order.
func (r *Reconciler) GetTrendingList(timeWindow string, page, limit int) (*models.TrendingPage, error) {
	trending, err := r.catalog.GetTrending(timeWindow, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "fetching trending series")
	}

	items := trending.Results
	summaries := make([]models.SeriesSummary, len(items))
	p := pool.New().WithMaxGoroutines(enrichWorkers)
	for i := range items {
		p.Go(func() {
			summaries[i] = r.buildSummary(&items[i])
		})
	}
	p.Wait()

	return &models.TrendingPage{
		Page:         trending.Page,
		TotalPages:   trending.TotalPages,
		TotalResults: trending.TotalResults,
		Results:      summaries,
	}, nil
}

// GetEpisodeRatingGrid resolves a title and returns its detail record
// with the per-season episode rating grid embedded. Specials (season
// numbers <= 0) are excluded; unreleased episodes carry no scores.
func (r *Reconciler) GetEpisodeRatingGrid(title string) (*models.SeriesDetail, error) {
	match, err := r.resolve(title)
	if err != nil {
		return nil, err
	}

	structural, err := r.catalog.GetTVDetails(match.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching details for %q", title)
	}

	detail := buildDetail(structural)
	detail.ExternalID, detail.SecondaryRatings = r.secondary(structural.ID)

	var regular []models.TMDBSeason
	for _, s := range structural.Seasons {
		if s.SeasonNumber > 0 {
			regular = append(regular, s)
		}
	}

	now := time.Now()
	episodes := make([][]models.EpisodeRating, len(regular))
	fetchErrs := make([]error, len(regular))

	p := pool.New().WithMaxGoroutines(enrichWorkers)
	for i := range regular {
		p.Go(func() {
			eps, err := r.catalog.GetSeasonEpisodes(structural.ID, regular[i].SeasonNumber)
			if err != nil {
				fetchErrs[i] = err
				return
			}
			episodes[i] = episodeRatings(eps, now)
		})
	}
	p.Wait()

	for i, err := range fetchErrs {
		if err != nil {
			return nil, errors.Wrapf(err, "fetching season %d", regular[i].SeasonNumber)
		}
	}

	grid := make(models.SeasonRatingGrid, len(regular))
	for i, s := range regular {
		grid[s.SeasonNumber] = episodes[i]
	}
	detail.Seasons = grid

	return detail, nil
}

// resolve runs the catalog search and takes the first (most relevant)
// result
func (r *Reconciler) resolve(title string) (*models.TMDBSeries, error) {
	results, err := r.catalog.SearchTV(title)
	if err != nil {
		return nil, errors.Wrapf(err, "searching catalog for %q", title)
	}
	if len(results) == 0 {
		return nil, &NotFoundError{Title: title}
	}
	return &results[0], nil
}

// secondary fetches the cross-reference ID and the secondary rating
// block. Both steps are best-effort: failures are logged and the
// caller proceeds with whatever was obtained.
func (r *Reconciler) secondary(tvID int) (string, *models.SecondaryRatings) {
	ids, err := r.catalog.GetExternalIDs(tvID)
	if err != nil {
		util.Warn("External ID lookup failed, skipping secondary ratings", "tvID", tvID, "error", err)
		return "", nil
	}
	if ids.IMDBID == "" {
		util.Debug("No IMDb ID for series, skipping secondary ratings", "tvID", tvID)
		return "", nil
	}

	ratings, err := r.ratings.GetRatings("", ids.IMDBID)
	if err != nil {
		util.Warn("Secondary ratings lookup failed, continuing without them",
			"tvID", tvID, "imdbID", ids.IMDBID, "error", err)
		return ids.IMDBID, nil
	}

	return ids.IMDBID, ratings
}

// buildSummary converts one trending entry into an enriched summary
func (r *Reconciler) buildSummary(s *models.TMDBSeries) models.SeriesSummary {
	summary := models.SeriesSummary{
		ID:            s.ID,
		DisplayName:   titleCase(s.Name),
		Overview:      s.Overview,
		FirstAirDate:  s.FirstAirDate,
		PrimaryRating: round1(s.VoteAverage),
		PosterURL:     imageURL(s.PosterPath, posterSize),
		BackdropURL:   imageURL(s.BackdropPath, backdropSize),
		Popularity:    s.Popularity,
	}

	summary.ExternalID, summary.SecondaryRatings = r.secondary(s.ID)

	return summary
}

// buildDetail maps the catalog's structural record onto the output
// shape. Secondary fields are filled in by the caller.
func buildDetail(d *models.TMDBSeriesDetails) *models.SeriesDetail {
	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}

	networks := make([]string, 0, len(d.Networks))
	for _, n := range d.Networks {
		networks = append(networks, n.Name)
	}

	return &models.SeriesDetail{
		ID:            d.ID,
		DisplayName:   d.Name,
		OriginalTitle: d.OriginalName,
		Overview:      d.Overview,
		FirstAirDate:  d.FirstAirDate,
		LastAirDate:   d.LastAirDate,
		PrimaryRating: round1(d.VoteAverage),
		VoteCount:     d.VoteCount,
		SeasonCount:   d.NumberOfSeasons,
		EpisodeCount:  d.NumberOfEpisodes,
		Genres:        genres,
		Networks:      networks,
		PosterURL:     imageURL(d.PosterPath, posterSize),
		BackdropURL:   imageURL(d.BackdropPath, backdropSize),
		Popularity:    d.Popularity,
	}
}

// episodeRatings builds the episode list for one season, nulling
// scores on anything not yet released
func episodeRatings(eps []models.TMDBEpisode, now time.Time) []models.EpisodeRating {
	ratings := make([]models.EpisodeRating, 0, len(eps))
	for _, ep := range eps {
		er := models.EpisodeRating{
			EpisodeNumber: ep.EpisodeNumber,
			Title:         ep.Name,
			AirDate:       ep.AirDate,
			IsUnreleased:  episodeUnreleased(ep.AirDate, now),
		}
		if !er.IsUnreleased {
			rating := round1(ep.VoteAverage)
			votes := ep.VoteCount
			er.Rating = &rating
			er.VoteCount = &votes
		}
		ratings = append(ratings, er)
	}
	return ratings
}
