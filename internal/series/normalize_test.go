package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 8.7, round1(8.743))
	assert.Equal(t, 8.8, round1(8.75))
	assert.Equal(t, 0.0, round1(0))
	assert.Equal(t, 10.0, round1(9.96))
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"the last of us", "The Last Of Us"},
		{"SEVERANCE", "Severance"},
		{"breaking  bad", "Breaking Bad"},
		{"Dark", "Dark"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, titleCase(tc.input), "titleCase(%q)", tc.input)
	}
}

func TestImageURL(t *testing.T) {
	url := imageURL("/abc.jpg", posterSize)
	require.NotNil(t, url)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", *url)

	url = imageURL("/abc.jpg", backdropSize)
	require.NotNil(t, url)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/abc.jpg", *url)

	assert.Nil(t, imageURL("", posterSize), "empty path must never yield a prefix-only URL")
}

func TestEpisodeUnreleased(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC)

	assert.False(t, episodeUnreleased("2024-06-14", now), "yesterday is released")
	assert.False(t, episodeUnreleased("2024-06-15", now), "airing today counts as released")
	assert.True(t, episodeUnreleased("2024-06-16", now), "tomorrow is unreleased")
	assert.True(t, episodeUnreleased("", now), "missing air date is unreleased")
	assert.True(t, episodeUnreleased("June 15th", now), "unparseable air date is unreleased")
}
