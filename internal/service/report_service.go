package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStore persiste los reportes de películas faltantes.
type ReportStore interface {
	Insert(ctx context.Context, report *models.MissingMovieReport) error
	FindByURL(ctx context.Context, url string) (*models.MissingMovieReport, error)
	List(ctx context.Context, status string, limit int) ([]models.MissingMovieReport, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// MovieFinder testea si una url ya existe en el catálogo.
type MovieFinder interface {
	FindByURL(ctx context.Context, url string) (*models.MovieRecord, error)
}

// ReportService valida y administra los reportes de películas faltantes.
type ReportService struct {
	store  ReportStore
	movies MovieFinder
}

func NewReportService(store ReportStore, movies MovieFinder) *ReportService {
	return &ReportService{store: store, movies: movies}
}

// Report registra una url faltante. Rechaza urls que no parecen de película,
// urls que ya están en el catálogo y reportes duplicados.
func (s *ReportService) Report(ctx context.Context, rawURL, username string) (*models.MissingMovieReport, error) {
	u := recommender.NormalizeURL(rawURL)
	if !strings.HasPrefix(u, "/film/") {
		return nil, fmt.Errorf("la url no parece una página de película de Letterboxd")
	}

	if movie, err := s.movies.FindByURL(ctx, u); err != nil {
		return nil, err
	} else if movie != nil {
		return nil, fmt.Errorf("%q ya está en el catálogo", movie.Title)
	}

	if existing, err := s.store.FindByURL(ctx, u); err != nil {
		return nil, err
	} else if existing != nil {
		// reporte repetido: se devuelve el existente, sin error
		return existing, nil
	}

	report := &models.MissingMovieReport{
		URL:      u,
		Username: username,
		Status:   models.ReportStatusPending,
	}
	if err := s.store.Insert(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// List devuelve reportes filtrados por status ("" = todos).
func (s *ReportService) List(ctx context.Context, status string, limit int) ([]models.MissingMovieReport, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.List(ctx, status, limit)
}

// Resolve cierra un reporte como resuelto o rechazado.
func (s *ReportService) Resolve(ctx context.Context, id string, status string) error {
	if status != models.ReportStatusResolved && status != models.ReportStatusRejected {
		return fmt.Errorf("status inválido: %q", status)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("id inválido: %q", id)
	}
	return s.store.SetStatus(ctx, oid, status)
}
