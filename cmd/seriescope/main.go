package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/alvarorichard/seriescope/internal/api"
	"github.com/alvarorichard/seriescope/internal/models"
	"github.com/alvarorichard/seriescope/internal/series"
	"github.com/alvarorichard/seriescope/internal/util"
	"github.com/alvarorichard/seriescope/internal/version"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0D9488")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45B7D1"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)
)

// trendingOptions holds the flags of the trending subcommand
type trendingOptions struct {
	window string
	page   int
	limit  int
}

// newTrendingFlagSet defines the trending subcommand flags. A separate
// FlagSet is required because the stdlib flag package stops parsing at
// the first non-flag argument, so flags placed after the subcommand
// never reach the global set.
func newTrendingFlagSet(opts *trendingOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("trending", flag.ContinueOnError)
	fs.StringVar(&opts.window, "window", "week", "trending time window (day or week)")
	fs.IntVar(&opts.page, "page", 1, "trending page number")
	fs.IntVar(&opts.limit, "limit", 10, "maximum trending entries")
	return fs
}

// parseTrendingFlags parses the arguments following the trending
// subcommand
func parseTrendingFlags(args []string) (*trendingOptions, error) {
	opts := &trendingOptions{}
	if err := newTrendingFlagSet(opts).Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

const usageBanner = "SeriesScope - TV series metadata aggregator"

func usage() {
	fmt.Println(titleStyle.Render(usageBanner))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  seriescope detail <title>")
	fmt.Println("  seriescope trending [--window day|week] [--page N] [--limit N]")
	fmt.Println("  seriescope episodes <title>")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Trending flags:")
	newTrendingFlagSet(&trendingOptions{}).PrintDefaults()
	fmt.Println()
	fmt.Println("Requires TMDB_API_KEY and OMDB_API_KEY in the environment.")
}

func main() {
	versionFlag := flag.Bool("version", false, "show version information")
	debugFlag := flag.Bool("debug", false, "enable debug mode")
	jsonFlag := flag.Bool("json", false, "emit raw JSON instead of styled output")

	flag.Parse()

	if *versionFlag || version.HasVersionArg() {
		version.ShowVersion()
		return
	}

	util.SetDebugMode(*debugFlag)
	util.InitLogger()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return
	}

	catalog, err := api.NewTMDBClient(os.Getenv("TMDB_API_KEY"))
	if err != nil {
		util.Fatal("Catalog client setup failed", "error", err)
	}
	ratings, err := api.NewOMDbClient(os.Getenv("OMDB_API_KEY"))
	if err != nil {
		util.Fatal("Ratings client setup failed", "error", err)
	}
	reconciler := series.NewReconciler(catalog, ratings)

	switch args[0] {
	case "detail":
		title := strings.Join(args[1:], " ")
		if title == "" {
			usage()
			os.Exit(1)
		}
		detail, err := reconciler.GetSeriesDetail(title)
		if err != nil {
			exitWithError(err)
		}
		if *jsonFlag {
			printJSON(detail)
			return
		}
		renderDetail(detail)

	case "trending":
		opts, err := parseTrendingFlags(args[1:])
		if err != nil {
			os.Exit(2)
		}
		page, err := reconciler.GetTrendingList(opts.window, opts.page, opts.limit)
		if err != nil {
			exitWithError(err)
		}
		if *jsonFlag {
			printJSON(page)
			return
		}
		renderTrending(page)

	case "episodes":
		title := strings.Join(args[1:], " ")
		if title == "" {
			usage()
			os.Exit(1)
		}
		detail, err := reconciler.GetEpisodeRatingGrid(title)
		if err != nil {
			exitWithError(err)
		}
		if *jsonFlag {
			printJSON(detail)
			return
		}
		renderEpisodeGrid(detail)

	default:
		usage()
		os.Exit(1)
	}
}

func exitWithError(err error) {
	var notFound *series.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Println(errorStyle.Render(notFound.Error()))
		os.Exit(1)
	}
	util.Fatal("Request failed", "error", err)
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		util.Fatal("Encoding output failed", "error", err)
	}
	fmt.Println(string(out))
}

func renderDetail(d *models.SeriesDetail) {
	fmt.Println(titleStyle.Render(d.DisplayName) + mutedStyle.Render("  ("+d.FirstAirDate+")"))
	fmt.Printf("%s %.1f (%d votes)\n", labelStyle.Render("Rating:"), d.PrimaryRating, d.VoteCount)
	fmt.Printf("%s %d seasons, %d episodes\n", labelStyle.Render("Structure:"), d.SeasonCount, d.EpisodeCount)
	if len(d.Genres) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Genres:"), strings.Join(d.Genres, ", "))
	}
	if len(d.Networks) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Networks:"), strings.Join(d.Networks, ", "))
	}
	renderSecondary(d.SecondaryRatings)
	if d.Overview != "" {
		fmt.Println(mutedStyle.Render(d.Overview))
	}
}

func renderTrending(page *models.TrendingPage) {
	fmt.Println(titleStyle.Render("Trending TV series") +
		mutedStyle.Render(fmt.Sprintf("  page %d/%d", page.Page, page.TotalPages)))
	for i, s := range page.Results {
		line := fmt.Sprintf("%2d. %s  ★ %.1f", i+1, s.DisplayName, s.PrimaryRating)
		if s.SecondaryRatings != nil && s.SecondaryRatings.IMDBRating != nil {
			line += mutedStyle.Render(fmt.Sprintf("  IMDb %.1f", *s.SecondaryRatings.IMDBRating))
		}
		fmt.Println(line)
	}
}

func renderEpisodeGrid(d *models.SeriesDetail) {
	fmt.Println(titleStyle.Render(d.DisplayName) + mutedStyle.Render("  episode ratings"))
	renderSecondary(d.SecondaryRatings)

	numbers := make([]int, 0, len(d.Seasons))
	for n := range d.Seasons {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		fmt.Println(labelStyle.Render(fmt.Sprintf("Season %d", n)))
		for _, ep := range d.Seasons[n] {
			if ep.IsUnreleased {
				fmt.Printf("  E%02d %s %s\n", ep.EpisodeNumber, ep.Title, mutedStyle.Render("(unreleased)"))
				continue
			}
			fmt.Printf("  E%02d %s  ★ %.1f\n", ep.EpisodeNumber, ep.Title, *ep.Rating)
		}
	}
}

func renderSecondary(r *models.SecondaryRatings) {
	if r == nil {
		return
	}
	parts := []string{}
	if r.IMDBRating != nil {
		parts = append(parts, fmt.Sprintf("IMDb %.1f (%s votes)", *r.IMDBRating, r.IMDBVotes))
	}
	if r.RottenTomatoes != nil {
		parts = append(parts, "RT "+*r.RottenTomatoes)
	}
	if r.Metascore != nil {
		parts = append(parts, fmt.Sprintf("Metascore %d", *r.Metascore))
	}
	if len(parts) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Critics:"), strings.Join(parts, " | "))
	}
	if r.CorrectedTitle != "" {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("matched %q for query %q", r.CorrectedTitle, r.OriginalQuery)))
	}
}
