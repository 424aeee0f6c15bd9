package service

import (
	"context"
	"fmt"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// svcMovie arma una película de catálogo para tests de services.
func svcMovie(id int, title string, year int, rating float64, count int, genreLabels ...string) models.MovieRecord {
	selected := make(map[string]bool, len(genreLabels))
	for _, g := range genreLabels {
		selected[g] = true
	}
	return models.MovieRecord{
		MovieID:               id,
		URL:                   fmt.Sprintf("/film/pelicula-%d/", id),
		Title:                 title,
		ReleaseYear:           year,
		Runtime:               100 + id,
		CountryOfOrigin:       1,
		ContentType:           models.ContentTypeMovie,
		LetterboxdRating:      &rating,
		LetterboxdRatingCount: count,
		Genres:                genres.Encode(selected),
		Poster:                fmt.Sprintf("poster-%d.jpg", id),
	}
}

// svcRating arma el rating crudo de un usuario sobre una película.
func svcRating(username string, m models.MovieRecord, userRating float64) models.UserRatingRecord {
	return models.UserRatingRecord{
		MovieID:    m.MovieID,
		URL:        m.URL,
		UserRating: userRating,
		Username:   username,
	}
}

// fakeCatalog implementa CatalogSource con un catálogo fijo.
type fakeCatalog struct {
	movies []models.MovieRecord
	err    error
}

func (f *fakeCatalog) GetCatalog(ctx context.Context) ([]models.MovieRecord, error) {
	return f.movies, f.err
}

// fakeRatings implementa RatingsSource con ratings por username.
type fakeRatings struct {
	byUser map[string][]models.UserRatingRecord
	err    error
}

func (f *fakeRatings) GetUserRatings(ctx context.Context, username string) ([]models.UserRatingRecord, []int, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.byUser[username], nil, nil
}

// fakeStatsStore implementa StatsStore en memoria.
type fakeStatsStore struct {
	docs      []models.UserStatisticsDoc
	upsertErr error
	getAllErr error
}

func (f *fakeStatsStore) Upsert(ctx context.Context, doc *models.UserStatisticsDoc) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i := range f.docs {
		if f.docs[i].Username == doc.Username {
			f.docs[i] = *doc
			return nil
		}
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeStatsStore) GetAll(ctx context.Context) ([]models.UserStatisticsDoc, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.docs, nil
}

// fakeFetcher implementa WatchlistFetcher con watchlists fijas.
type fakeFetcher struct {
	byUser map[string][]string
	err    error
}

func (f *fakeFetcher) FetchWatchlist(ctx context.Context, username string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[username], nil
}
