package service

import (
	"context"
	"errors"
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsFixtures arma un perfil de 5 dramas con ratings 5..1 contra un
// agregado constante de 3.0 y counts 1000..5000.
func statsFixtures() ([]models.MovieRecord, []models.UserRatingRecord) {
	catalog := make([]models.MovieRecord, 0, 5)
	ratings := make([]models.UserRatingRecord, 0, 5)
	for i := 1; i <= 5; i++ {
		m := svcMovie(i, "Drama", 2000+i, 3.0, i*1000, "drama")
		catalog = append(catalog, m)
		ratings = append(ratings, svcRating("ana", m, float64(6-i)))
	}
	return catalog, ratings
}

func newStatsService(catalog []models.MovieRecord, ratings map[string][]models.UserRatingRecord, store *fakeStatsStore) *StatsService {
	movies := &fakeCatalog{movies: catalog}
	profiles := NewProfileService(&fakeRatings{byUser: ratings}, movies, nil)
	return NewStatsService(profiles, movies, store)
}

func TestGetStatisticsSimpleStats(t *testing.T) {
	catalog, ratings := statsFixtures()
	svc := newStatsService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, &fakeStatsStore{})

	resp, err := svc.GetStatistics(context.Background(), "ana")
	require.NoError(t, err)

	simple := resp.SimpleStats
	assert.Equal(t, 3.0, simple.UserRating.Mean)
	assert.Equal(t, 1.581, simple.UserRating.Std, "desviación muestral de [1 2 3 4 5]")
	assert.Equal(t, 3.0, simple.LetterboxdRating.Mean)
	assert.Equal(t, 0.0, simple.LetterboxdRating.Std)
	assert.Equal(t, 0.0, simple.RatingDiff.Mean)
	assert.Equal(t, 3000, simple.LetterboxdRatingCount.Mean, "la media de counts se reporta como entero")
}

func TestGetStatisticsGenreAverages(t *testing.T) {
	catalog, ratings := statsFixtures()
	svc := newStatsService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, &fakeStatsStore{})

	resp, err := svc.GetStatistics(context.Background(), "ana")
	require.NoError(t, err)

	averages := resp.SimpleStats.GenreAverages
	require.Len(t, averages, 19, "se reportan los 19 géneros del catálogo")

	drama := averages["drama"]
	assert.Equal(t, 3.0, drama.MeanUserRating)
	assert.Equal(t, 0.0, drama.MeanRatingDiff)

	western := averages["western"]
	assert.Equal(t, "N/A", western.MeanUserRating, "género sin películas del usuario")
	assert.Equal(t, "N/A", western.MeanRatingDiff)
}

func TestGetStatisticsDistributionSorted(t *testing.T) {
	catalog, ratings := statsFixtures()
	svc := newStatsService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, &fakeStatsStore{})

	resp, err := svc.GetStatistics(context.Background(), "ana")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, resp.Distribution.UserRatingValues)
	assert.Equal(t, []float64{3, 3, 3, 3, 3}, resp.Distribution.LetterboxdRatingValues)
}

func TestGetStatisticsPercentiles(t *testing.T) {
	catalog, ratings := statsFixtures()

	// población preexistente con medias 1, 2 y 4 en cada categoría
	store := &fakeStatsStore{}
	for i, mean := range []float64{1, 2, 4} {
		store.docs = append(store.docs, models.UserStatisticsDoc{
			Username:                  []string{"bob", "carla", "dani"}[i],
			MeanUserRating:            mean,
			MeanLetterboxdRating:      mean,
			MeanRatingDiff:            mean,
			MeanLetterboxdRatingCount: mean,
		})
	}

	svc := newStatsService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, store)

	resp, err := svc.GetStatistics(context.Background(), "ana")
	require.NoError(t, err)

	// ana entra a la población al pedir sus stats: 4 usuarios en total
	assert.Equal(t, 50.0, resp.Percentiles["user_rating_percentile"], "2 de 4 medias estrictamente menores que 3.0")
	assert.Equal(t, 50.0, resp.Percentiles["letterboxd_rating_percentile"])
	assert.Equal(t, 0.0, resp.Percentiles["rating_differential_percentile"], "ninguna media menor que 0")
	assert.Equal(t, 75.0, resp.Percentiles["letterboxd_rating_count_percentile"], "3 de 4 medias menores que 3000")

	require.Len(t, store.docs, 4)
}

func TestGetStatisticsPopulationUnavailable(t *testing.T) {
	catalog, ratings := statsFixtures()
	store := &fakeStatsStore{getAllErr: errors.New("mongo caído")}
	svc := newStatsService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, store)

	resp, err := svc.GetStatistics(context.Background(), "ana")
	require.NoError(t, err, "los percentiles se degradan pero la respuesta sale igual")

	for _, key := range []string{
		"user_rating_percentile",
		"letterboxd_rating_percentile",
		"rating_differential_percentile",
		"letterboxd_rating_count_percentile",
	} {
		assert.Equal(t, 0.0, resp.Percentiles[key])
	}
}

func TestCompatibilityIdenticalProfiles(t *testing.T) {
	catalog, ratings := profileFixtures()

	mirrored := make([]models.UserRatingRecord, len(ratings))
	for i, r := range ratings {
		r.Username = "bob"
		mirrored[i] = r
	}

	svc := newStatsService(catalog, map[string][]models.UserRatingRecord{
		"ana": ratings,
		"bob": mirrored,
	}, &fakeStatsStore{})

	result, err := svc.Compatibility(context.Background(), "ana", "bob")
	require.NoError(t, err)
	assert.Equal(t, "ana", result.Username1)
	assert.Equal(t, "bob", result.Username2)
	assert.GreaterOrEqual(t, result.CompatibilityScore, 99, "perfiles idénticos")
}
