package service

import (
	"context"
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBrowser struct {
	lastLimit  int
	lastOffset int
	lastMetric string
}

func (f *fakeBrowser) Search(ctx context.Context, q, contentType string, yearFrom, yearTo, limit, offset int) ([]models.MovieRecord, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return nil, nil
}

func (f *fakeBrowser) Top(ctx context.Context, metric string, limit int) ([]models.MovieRecord, error) {
	f.lastMetric, f.lastLimit = metric, limit
	return nil, nil
}

func TestSearchSanitizesLimits(t *testing.T) {
	browser := &fakeBrowser{}
	svc := NewMovieService(browser)

	_, err := svc.Search(context.Background(), "heat", "", 0, 0, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, 20, browser.lastLimit, "limit por defecto")
	assert.Equal(t, 0, browser.lastOffset, "offset negativo se corrige")

	_, err = svc.Search(context.Background(), "heat", "", 0, 0, 1000, 40)
	require.NoError(t, err)
	assert.Equal(t, maxBrowseLimit, browser.lastLimit)
	assert.Equal(t, 40, browser.lastOffset)
}

func TestTopClampsLimit(t *testing.T) {
	browser := &fakeBrowser{}
	svc := NewMovieService(browser)

	_, err := svc.Top(context.Background(), "letterboxd_rating", 500)
	require.NoError(t, err)
	assert.Equal(t, "letterboxd_rating", browser.lastMetric)
	assert.Equal(t, maxBrowseLimit, browser.lastLimit)
}
