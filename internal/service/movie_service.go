package service

import (
	"context"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// MovieBrowser es la cara de consulta del catálogo.
type MovieBrowser interface {
	Search(ctx context.Context, q string, contentType string, yearFrom, yearTo int, limit, offset int) ([]models.MovieRecord, error)
	Top(ctx context.Context, metric string, limit int) ([]models.MovieRecord, error)
}

// MovieService expone la navegación del catálogo con límites saneados.
type MovieService struct {
	movies MovieBrowser
}

func NewMovieService(movies MovieBrowser) *MovieService {
	return &MovieService{movies: movies}
}

const maxBrowseLimit = 100

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > maxBrowseLimit {
		return maxBrowseLimit
	}
	return limit
}

func (s *MovieService) Search(ctx context.Context, q, contentType string, yearFrom, yearTo, limit, offset int) ([]models.MovieRecord, error) {
	if offset < 0 {
		offset = 0
	}
	return s.movies.Search(ctx, q, contentType, yearFrom, yearTo, clampLimit(limit), offset)
}

func (s *MovieService) Top(ctx context.Context, metric string, limit int) ([]models.MovieRecord, error) {
	return s.movies.Top(ctx, metric, clampLimit(limit))
}
