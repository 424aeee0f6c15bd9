package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAllRatings struct {
	ratings []models.UserRatingRecord
}

func (f *fakeAllRatings) GetAllRatings(ctx context.Context, maxRows int) ([]models.UserRatingRecord, error) {
	if len(f.ratings) > maxRows {
		return f.ratings[:maxRows], nil
	}
	return f.ratings, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateCatalog() { f.calls++ }

func TestDropSparseUsers(t *testing.T) {
	catalog, _ := recommendFixtures()

	var rows []models.ProcessedUserRow
	for i := 0; i < 6; i++ {
		rows = append(rows, models.ProcessedUserRow{MovieRecord: catalog[i], UserRating: 3.0, Username: "ana"})
	}
	rows = append(rows, models.ProcessedUserRow{MovieRecord: catalog[6], UserRating: 4.0, Username: "solo"})

	kept := dropSparseUsers(rows, 5)
	require.Len(t, kept, 6)
	for _, r := range kept {
		assert.Equal(t, "ana", r.Username)
	}
}

func TestRetrainGeneralTrainsAndPersists(t *testing.T) {
	catalog, anaRatings := recommendFixtures()

	var all []models.UserRatingRecord
	all = append(all, anaRatings...)
	for i := 10; i < 20; i++ {
		all = append(all, svcRating("bob", catalog[i], 3.0+float64(i%4)*0.5))
	}
	// usuario con dos ratings: se descarta del entrenamiento
	all = append(all, svcRating("solo", catalog[0], 5.0), svcRating("solo", catalog[1], 0.5))

	path := filepath.Join(t.TempDir(), "modelo-general.gob")
	general := recommender.NewGeneralModel(path)

	svc := NewAdminService(&fakeAllRatings{ratings: all}, &fakeCatalog{movies: catalog}, &fakeInvalidator{}, general, nil, nil)

	result, err := svc.RetrainGeneral(context.Background(), models.RetrainGeneralRequest{})
	require.NoError(t, err)

	assert.Equal(t, 20, result.Rows, "las filas del usuario escaso no entrenan")
	assert.Equal(t, path, result.Path)
	assert.GreaterOrEqual(t, result.RMSETest, 0.0)

	forest, err := recommender.LoadForest(path)
	require.NoError(t, err)
	assert.NotEmpty(t, forest.Trees)

	status := svc.GeneralModelStatus()
	assert.Equal(t, path, status.Path)
	require.Len(t, status.Features, recommender.NumFeatures)
	assert.Equal(t, "release_year", status.Features[0])
	assert.Equal(t, "is_movie", status.Features[len(status.Features)-1])
}

func TestRetrainGeneralTooFewRows(t *testing.T) {
	catalog, _ := recommendFixtures()

	all := []models.UserRatingRecord{
		svcRating("solo", catalog[0], 5.0),
		svcRating("solo", catalog[1], 0.5),
	}

	path := filepath.Join(t.TempDir(), "modelo-general.gob")
	svc := NewAdminService(&fakeAllRatings{ratings: all}, &fakeCatalog{movies: catalog}, &fakeInvalidator{}, recommender.NewGeneralModel(path), nil, nil)

	_, err := svc.RetrainGeneral(context.Background(), models.RetrainGeneralRequest{})
	require.Error(t, err)
}

func TestInvalidateCatalogDelegates(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := NewAdminService(nil, nil, inv, nil, nil, nil)

	svc.InvalidateCatalog()
	assert.Equal(t, 1, inv.calls)
}
