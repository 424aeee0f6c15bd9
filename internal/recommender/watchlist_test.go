package recommender

import (
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"https://letterboxd.com/film/dune-part-two/":     "/film/dune-part-two/",
		"https://www.letterboxd.com/film/dune-part-two/": "/film/dune-part-two/",
		"letterboxd.com/film/dune-part-two/":             "/film/dune-part-two/",
		"www.letterboxd.com/film/dune-part-two":          "/film/dune-part-two/",
		"/film/dune-part-two/":                           "/film/dune-part-two/",
		"/film/dune-part-two":                            "/film/dune-part-two/",
		"film/dune-part-two/":                            "/film/dune-part-two/",
		"//film//dune-part-two/":                         "/film/dune-part-two/",
		"  /film/dune-part-two/  ":                       "/film/dune-part-two/",
		"":                                               "",
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeURL(raw), "input %q", raw)
	}
}

func TestBuildWatchlistPoolIntersects(t *testing.T) {
	inCatalog := mkMovie(1, "Está", 2000, 100, 4.0, 5000, "drama")
	alsoIn := mkMovie(2, "También", 2001, 110, 3.9, 4000, "drama")
	notWanted := mkMovie(3, "Fuera", 2002, 120, 3.8, 3000, "drama")
	catalog := []models.MovieRecord{inCatalog, alsoIn, notWanted}

	// las urls de la watchlist llegan absolutas, el catálogo las tiene
	// relativas: la normalización las tiene que hacer coincidir
	watchlist := []string{
		"https://letterboxd.com" + inCatalog.URL,
		"https://www.letterboxd.com" + alsoIn.URL,
		"/film/desconocida/",
	}

	pool, err := BuildWatchlistPool(catalog, watchlist, "ana")
	require.NoError(t, err)
	require.Len(t, pool, 2)
	assert.Equal(t, 1, pool[0].MovieID)
	assert.Equal(t, 2, pool[1].MovieID)
}

func TestBuildWatchlistPoolEmpty(t *testing.T) {
	catalog := []models.MovieRecord{mkMovie(1, "M", 2000, 100, 4.0, 5000, "drama")}

	_, err := BuildWatchlistPool(catalog, []string{"/film/no-esta/"}, "ana")
	require.Error(t, err)

	var we *WatchlistEmptyError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "ana", we.Username)
}

func TestBuildPredictionPoolEmpty(t *testing.T) {
	catalog := []models.MovieRecord{mkMovie(1, "M", 2000, 100, 4.0, 5000, "drama")}

	_, err := BuildPredictionPool(catalog, []string{"/film/no-esta/"})
	require.Error(t, err)

	var pe *PredictionListError
	assert.ErrorAs(t, err, &pe)
}
