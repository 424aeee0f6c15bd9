package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recommendFixtures arma 20 películas alternando western y drama, con "ana"
// puntuando las primeras 10 (drama alto, western bajo).
func recommendFixtures() ([]models.MovieRecord, []models.UserRatingRecord) {
	catalog := make([]models.MovieRecord, 0, 20)
	ratings := make([]models.UserRatingRecord, 0, 10)
	for i := 1; i <= 20; i++ {
		genre := "drama"
		if i%2 == 1 {
			genre = "western"
		}
		m := svcMovie(i, "Candidata", 1990+i, 3.5, i*500, genre)
		catalog = append(catalog, m)

		if i <= 10 {
			userRating := 4.5
			if genre == "western" {
				userRating = 1.5
			}
			ratings = append(ratings, svcRating("ana", m, userRating))
		}
	}
	return catalog, ratings
}

// openRequest pide recomendaciones sin restringir nada.
func openRequest(usernames ...string) RecRequest {
	both := []string{models.ContentTypeMovie, models.ContentTypeTV}
	return RecRequest{
		Usernames:      usernames,
		NumRecs:        5,
		ModelType:      recommender.ModelPersonalized,
		Genres:         genres.Labels,
		ContentTypes:   both,
		MinReleaseYear: 1900,
		MaxReleaseYear: 2100,
		MinRuntime:     0,
		MaxRuntime:     1000,
	}
}

func newRecommendService(catalog []models.MovieRecord, ratings map[string][]models.UserRatingRecord, singleUserNoRewatch bool) *RecommendService {
	movies := &fakeCatalog{movies: catalog}
	profiles := NewProfileService(&fakeRatings{byUser: ratings}, movies, nil)
	general := recommender.NewGeneralModel("")
	return NewRecommendService(profiles, movies, general, nil, singleUserNoRewatch)
}

func TestRecommendSingleUser(t *testing.T) {
	catalog, ratings := recommendFixtures()
	svc := newRecommendService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, true)

	items, err := svc.Recommend(context.Background(), openRequest("ana"))
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), 5)

	rated := make(map[string]bool, len(ratings))
	for _, r := range ratings {
		rated[r.URL] = true
	}
	for _, item := range items {
		assert.False(t, rated[item.URL], "no se recomienda lo ya visto: %s", item.URL)
	}
}

func TestRecommendSingleUserIgnoresAllowRewatches(t *testing.T) {
	catalog, ratings := recommendFixtures()
	svc := newRecommendService(catalog, map[string][]models.UserRatingRecord{"ana": ratings}, true)

	req := openRequest("ana")
	req.AllowRewatches = true

	items, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	rated := make(map[string]bool, len(ratings))
	for _, r := range ratings {
		rated[r.URL] = true
	}
	for _, item := range items {
		assert.False(t, rated[item.URL], "un solo usuario nunca repite vistas")
	}
}

func TestRecommendRequiresUsernames(t *testing.T) {
	catalog, _ := recommendFixtures()
	svc := newRecommendService(catalog, nil, true)

	_, err := svc.Recommend(context.Background(), RecRequest{})
	require.Error(t, err)
}

func TestRecommendGeneralModelServesThinProfiles(t *testing.T) {
	catalog, anaRatings := recommendFixtures()

	// artefacto general entrenado con la base completa
	var all []models.UserRatingRecord
	all = append(all, anaRatings...)
	for i := 10; i < 20; i++ {
		all = append(all, svcRating("bob", catalog[i], 3.0+float64(i%4)*0.5))
	}
	forest, _, err := trainGeneral(joinWithCatalog(all, catalog))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "modelo-general.gob")
	require.NoError(t, forest.Save(path))

	// leo tiene solo 4 ratings: muy pocos para entrenar, suficientes para
	// excluir vistas
	var leoRatings []models.UserRatingRecord
	for i := 0; i < 4; i++ {
		leoRatings = append(leoRatings, svcRating("leo", catalog[i], 4.0))
	}

	movies := &fakeCatalog{movies: catalog}
	profiles := NewProfileService(&fakeRatings{byUser: map[string][]models.UserRatingRecord{"leo": leoRatings}}, movies, nil)
	svc := NewRecommendService(profiles, movies, recommender.NewGeneralModel(path), nil, true)

	req := openRequest("leo")
	req.ModelType = recommender.ModelGeneral

	items, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err, "el modelo general existe justo para perfiles cortos")
	require.NotEmpty(t, items)

	rated := make(map[string]bool, len(leoRatings))
	for _, r := range leoRatings {
		rated[r.URL] = true
	}
	for _, item := range items {
		assert.False(t, rated[item.URL], "lo visto se sigue excluyendo: %s", item.URL)
	}

	// con el mismo perfil corto, el modelo personalizado sí es un error
	req.ModelType = recommender.ModelPersonalized
	_, err = svc.Recommend(context.Background(), req)

	var profileErr *recommender.UserProfileError
	require.ErrorAs(t, err, &profileErr)
}

func TestRecommendSingleUserShortProfileIsTerminal(t *testing.T) {
	catalog, ratings := recommendFixtures()
	svc := newRecommendService(catalog, map[string][]models.UserRatingRecord{"ana": ratings[:3]}, true)

	_, err := svc.Recommend(context.Background(), openRequest("ana"))

	var profileErr *recommender.UserProfileError
	require.ErrorAs(t, err, &profileErr)
}

func TestRecommendMultiUserSurvivesOneFailure(t *testing.T) {
	catalog, ratings := recommendFixtures()
	svc := newRecommendService(catalog, map[string][]models.UserRatingRecord{
		"ana": ratings,
		"bob": ratings[:2], // perfil corto: su pipeline falla
	}, true)

	items, err := svc.Recommend(context.Background(), openRequest("ana", "bob"))
	require.NoError(t, err, "la falla de un usuario no tumba el merge")
	assert.NotEmpty(t, items)
}

func TestRecommendPerUserReportsEachPipeline(t *testing.T) {
	catalog, ratings := recommendFixtures()
	svc := newRecommendService(catalog, map[string][]models.UserRatingRecord{
		"ana": ratings,
		"bob": ratings[:2],
	}, true)

	results, gotCatalog, err := svc.RecommendPerUser(context.Background(), openRequest("ana", "bob"))
	require.NoError(t, err)
	assert.Len(t, gotCatalog, len(catalog))
	require.Len(t, results, 2)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "ana", results[0].Set.Username)
	assert.NotEmpty(t, results[0].Set.Items)

	var profileErr *recommender.UserProfileError
	require.ErrorAs(t, results[1].Err, &profileErr)
}

func TestIsUserCorrectable(t *testing.T) {
	assert.True(t, IsUserCorrectable(&recommender.FilterError{Msg: "pool vacío"}))
	assert.True(t, IsUserCorrectable(&recommender.WatchlistOverlapError{}))
	assert.True(t, IsUserCorrectable(&recommender.PredictionListError{}))

	assert.False(t, IsUserCorrectable(&recommender.UserProfileError{Username: "ana"}))
	assert.False(t, IsUserCorrectable(errors.New("mongo caído")))
}
