package service

import (
	"context"
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReportStore struct {
	reports  []models.MissingMovieReport
	statuses map[string]string
}

func (f *fakeReportStore) Insert(ctx context.Context, report *models.MissingMovieReport) error {
	report.ID = primitive.NewObjectID()
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportStore) FindByURL(ctx context.Context, url string) (*models.MissingMovieReport, error) {
	for i := range f.reports {
		if f.reports[i].URL == url {
			return &f.reports[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReportStore) List(ctx context.Context, status string, limit int) ([]models.MissingMovieReport, error) {
	out := make([]models.MissingMovieReport, 0, limit)
	for _, r := range f.reports {
		if status != "" && r.Status != status {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if f.statuses == nil {
		f.statuses = make(map[string]string)
	}
	f.statuses[id.Hex()] = status
	return nil
}

type fakeMovieFinder struct {
	byURL map[string]models.MovieRecord
}

func (f *fakeMovieFinder) FindByURL(ctx context.Context, url string) (*models.MovieRecord, error) {
	if m, ok := f.byURL[url]; ok {
		return &m, nil
	}
	return nil, nil
}

func TestReportNormalizesAndInserts(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store, &fakeMovieFinder{})

	report, err := svc.Report(context.Background(), "https://letterboxd.com/film/perdida/", "ana")
	require.NoError(t, err)

	assert.Equal(t, "/film/perdida/", report.URL)
	assert.Equal(t, "ana", report.Username)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	require.Len(t, store.reports, 1)
}

func TestReportRejectsNonFilmURL(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, &fakeMovieFinder{})

	_, err := svc.Report(context.Background(), "https://letterboxd.com/ana/watchlist/", "ana")
	require.Error(t, err)
}

func TestReportRejectsMovieAlreadyInCatalog(t *testing.T) {
	heat := svcMovie(1, "Heat", 1995, 4.3, 5000, "crime")
	finder := &fakeMovieFinder{byURL: map[string]models.MovieRecord{heat.URL: heat}}
	svc := NewReportService(&fakeReportStore{}, finder)

	_, err := svc.Report(context.Background(), "https://letterboxd.com"+heat.URL, "ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Heat")
}

func TestReportDuplicateReturnsExisting(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store, &fakeMovieFinder{})

	first, err := svc.Report(context.Background(), "/film/perdida/", "ana")
	require.NoError(t, err)

	second, err := svc.Report(context.Background(), "https://letterboxd.com/film/perdida/", "bob")
	require.NoError(t, err, "el reporte repetido no es un error")

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.reports, 1)
}

func TestResolveValidatesStatus(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store, &fakeMovieFinder{})

	id := primitive.NewObjectID()
	require.Error(t, svc.Resolve(context.Background(), id.Hex(), "archivado"))
	require.Error(t, svc.Resolve(context.Background(), "no-es-un-oid", models.ReportStatusResolved))

	require.NoError(t, svc.Resolve(context.Background(), id.Hex(), models.ReportStatusResolved))
	assert.Equal(t, models.ReportStatusResolved, store.statuses[id.Hex()])
}

func TestListClampsLimit(t *testing.T) {
	store := &fakeReportStore{}
	for i := 0; i < 3; i++ {
		report := &models.MissingMovieReport{URL: "/film/x/", Status: models.ReportStatusPending}
		require.NoError(t, store.Insert(context.Background(), report))
	}
	svc := NewReportService(store, &fakeMovieFinder{})

	reports, err := svc.List(context.Background(), models.ReportStatusPending, -1)
	require.NoError(t, err)
	assert.Len(t, reports, 3, "limit inválido cae al default")
}
