package recommender

import (
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureNamesWidth(t *testing.T) {
	names := FeatureNames()
	require.Len(t, names, NumFeatures)

	assert.Equal(t, "release_year", names[0])
	assert.Equal(t, "letterboxd_rating_count", names[4])
	assert.Equal(t, "is_action", names[5])
	assert.Equal(t, "is_western", names[5+genres.NumGenres-1])
	assert.Equal(t, "is_movie", names[NumFeatures-1])
}

func TestPrepareMovieMatrixRow(t *testing.T) {
	m := mkMovie(7, "Heat", 1995, 170, 4.3, 900000, "action", "crime", "drama")

	X, err := PrepareMovieMatrix([]models.MovieRecord{m})
	require.NoError(t, err)
	require.Len(t, X, 1)
	require.Len(t, X[0], NumFeatures)

	row := X[0]
	assert.Equal(t, 1995.0, row[0])
	assert.Equal(t, 170.0, row[1])
	assert.Equal(t, 1.0, row[2])
	assert.Equal(t, 4.3, row[3])
	assert.Equal(t, 900000.0, row[4])

	// los flags de género respetan el orden canónico
	decoded := genres.Decode(m.Genres)
	for pos, g := range genres.Labels {
		assert.Equal(t, float64(decoded[g]), row[5+pos], "is_%s", g)
	}

	assert.Equal(t, 1.0, row[NumFeatures-1], "is_movie")
}

func TestPrepareMovieMatrixTVRow(t *testing.T) {
	m := mkMovie(8, "Some Show", 2020, 45, 3.8, 10000, "drama")
	m.ContentType = models.ContentTypeTV

	X, err := PrepareMovieMatrix([]models.MovieRecord{m})
	require.NoError(t, err)
	assert.Equal(t, 0.0, X[0][NumFeatures-1])
}

func TestPrepareMovieMatrixMissingRating(t *testing.T) {
	m := mkMovie(9, "Obscure", 1960, 80, 0, 12, "drama")
	m.LetterboxdRating = nil

	_, err := PrepareMovieMatrix([]models.MovieRecord{m})
	require.Error(t, err)

	var mfe *MissingFeatureError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "letterboxd_rating", mfe.Field)
	assert.Equal(t, m.URL, mfe.URL)
}

func TestPrepareTrainingMatrixTargets(t *testing.T) {
	rows := []models.ProcessedUserRow{
		mkRow("ana", mkMovie(1, "A", 2000, 100, 3.5, 1000, "drama"), 4.0),
		mkRow("ana", mkMovie(2, "B", 2001, 110, 3.9, 2000, "comedy"), 2.5),
	}

	X, y, err := PrepareTrainingMatrix(rows)
	require.NoError(t, err)
	require.Len(t, X, 2)
	assert.Equal(t, []float64{4.0, 2.5}, y)
}
