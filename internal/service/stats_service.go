package service

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
)

// StatsStore persiste las medias por usuario para los percentiles.
type StatsStore interface {
	Upsert(ctx context.Context, doc *models.UserStatisticsDoc) error
	GetAll(ctx context.Context) ([]models.UserStatisticsDoc, error)
}

// StatsService calcula las estadísticas de perfil de un usuario y su
// posición relativa contra todos los usuarios que ya pasaron por acá.
type StatsService struct {
	profiles *ProfileService
	movies   CatalogSource
	store    StatsStore
}

func NewStatsService(profiles *ProfileService, movies CatalogSource, store StatsStore) *StatsService {
	return &StatsService{profiles: profiles, movies: movies, store: store}
}

// GetStatistics arma la respuesta completa: stats simples, distribución de
// ratings y percentiles poblacionales. Como efecto secundario persiste las
// medias del usuario, que es lo que alimenta los percentiles de los demás.
func (s *StatsService) GetStatistics(ctx context.Context, username string) (*models.StatisticsResponse, error) {
	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetProfile(ctx, username, catalog)
	if err != nil {
		return nil, err
	}

	simple := computeUserStatistics(profile.Rows)

	doc := statisticsDoc(username, profile.Rows)
	if err := s.store.Upsert(ctx, doc); err != nil {
		// los percentiles se degradan, la respuesta no
		log.Printf("[stats] no pude guardar stats de %s: %v", username, err)
	}

	population, err := s.store.GetAll(ctx)
	if err != nil {
		log.Printf("[stats] no pude leer la población: %v", err)
		population = nil
	}

	return &models.StatisticsResponse{
		SimpleStats:  simple,
		Distribution: ratingDistribution(profile.Rows),
		Percentiles:  computePercentiles(doc, population),
	}, nil
}

// Compatibility entrena el vector de preferencias de cada usuario y los
// compara. 0 es oposición total, 100 gustos idénticos.
func (s *StatsService) Compatibility(ctx context.Context, user1, user2 string) (*models.CompatibilityResult, error) {
	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	p1, err := s.profiles.GetProfile(ctx, user1, catalog)
	if err != nil {
		return nil, err
	}
	p2, err := s.profiles.GetProfile(ctx, user2, catalog)
	if err != nil {
		return nil, err
	}

	v1, err := recommender.PreferenceVector(p1.Rows)
	if err != nil {
		return nil, err
	}
	v2, err := recommender.PreferenceVector(p2.Rows)
	if err != nil {
		return nil, err
	}

	return &models.CompatibilityResult{
		Username1:          user1,
		Username2:          user2,
		CompatibilityScore: recommender.CompatibilityScore(v1, v2),
	}, nil
}

func computeUserStatistics(rows []models.ProcessedUserRow) models.UserStatistics {
	userRatings := make([]float64, 0, len(rows))
	lbRatings := make([]float64, 0, len(rows))
	diffs := make([]float64, 0, len(rows))
	counts := make([]float64, 0, len(rows))
	for _, r := range rows {
		userRatings = append(userRatings, r.UserRating)
		if r.LetterboxdRating != nil {
			lbRatings = append(lbRatings, *r.LetterboxdRating)
		}
		if r.RatingDiff != nil {
			diffs = append(diffs, *r.RatingDiff)
		}
		counts = append(counts, float64(r.LetterboxdRatingCount))
	}

	return models.UserStatistics{
		UserRating: models.MeanStd{
			Mean: round3(mean(userRatings)),
			Std:  round3(sampleStd(userRatings)),
		},
		LetterboxdRating: models.MeanStd{
			Mean: round3(mean(lbRatings)),
			Std:  round3(sampleStd(lbRatings)),
		},
		RatingDiff: models.MeanStd{
			Mean: round3(mean(diffs)),
		},
		LetterboxdRatingCount: models.MeanStd{
			Mean: int(mean(counts)),
		},
		GenreAverages: genreAverages(rows),
	}
}

// genreAverages promedia por género sobre los 19 del catálogo. Un género
// sin películas del usuario reporta "N/A".
func genreAverages(rows []models.ProcessedUserRow) map[string]models.GenreAverage {
	out := make(map[string]models.GenreAverage, len(genres.Labels))
	for _, label := range genres.Labels {
		var ratings, diffs []float64
		for _, r := range rows {
			if !genres.Has(r.Genres, label) {
				continue
			}
			ratings = append(ratings, r.UserRating)
			if r.RatingDiff != nil {
				diffs = append(diffs, *r.RatingDiff)
			}
		}
		out[label] = models.GenreAverage{
			MeanUserRating: naOrRound3(ratings),
			MeanRatingDiff: naOrRound3(diffs),
		}
	}
	return out
}

func statisticsDoc(username string, rows []models.ProcessedUserRow) *models.UserStatisticsDoc {
	var userRatings, lbRatings, diffs, counts []float64
	for _, r := range rows {
		userRatings = append(userRatings, r.UserRating)
		if r.LetterboxdRating != nil {
			lbRatings = append(lbRatings, *r.LetterboxdRating)
		}
		if r.RatingDiff != nil {
			diffs = append(diffs, *r.RatingDiff)
		}
		counts = append(counts, float64(r.LetterboxdRatingCount))
	}
	return &models.UserStatisticsDoc{
		Username:                  username,
		MeanUserRating:            mean(userRatings),
		MeanLetterboxdRating:      mean(lbRatings),
		MeanRatingDiff:            mean(diffs),
		MeanLetterboxdRatingCount: mean(counts),
	}
}

// computePercentiles calcula, por categoría, qué porcentaje de la población
// tiene una media estrictamente menor que la del usuario.
func computePercentiles(doc *models.UserStatisticsDoc, population []models.UserStatisticsDoc) map[string]float64 {
	out := map[string]float64{
		"user_rating_percentile":             0,
		"letterboxd_rating_percentile":       0,
		"rating_differential_percentile":     0,
		"letterboxd_rating_count_percentile": 0,
	}
	if len(population) == 0 {
		return out
	}

	n := float64(len(population))
	var below [4]int
	for _, p := range population {
		if p.MeanUserRating < doc.MeanUserRating {
			below[0]++
		}
		if p.MeanLetterboxdRating < doc.MeanLetterboxdRating {
			below[1]++
		}
		if p.MeanRatingDiff < doc.MeanRatingDiff {
			below[2]++
		}
		if p.MeanLetterboxdRatingCount < doc.MeanLetterboxdRatingCount {
			below[3]++
		}
	}
	out["user_rating_percentile"] = round1(float64(below[0]) / n * 100)
	out["letterboxd_rating_percentile"] = round1(float64(below[1]) / n * 100)
	out["rating_differential_percentile"] = round1(float64(below[2]) / n * 100)
	out["letterboxd_rating_count_percentile"] = round1(float64(below[3]) / n * 100)
	return out
}

// ratingDistribution manda los valores crudos y ordenados; el frontend arma
// el histograma / kde con ellos.
func ratingDistribution(rows []models.ProcessedUserRow) models.RatingDistribution {
	dist := models.RatingDistribution{
		UserRatingValues:       make([]float64, 0, len(rows)),
		LetterboxdRatingValues: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		dist.UserRatingValues = append(dist.UserRatingValues, r.UserRating)
		if r.LetterboxdRating != nil {
			dist.LetterboxdRatingValues = append(dist.LetterboxdRatingValues, *r.LetterboxdRating)
		}
	}
	sort.Float64s(dist.UserRatingValues)
	sort.Float64s(dist.LetterboxdRatingValues)
	return dist
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd usa ddof=1, que es lo que reporta pandas.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func naOrRound3(xs []float64) any {
	if len(xs) == 0 {
		return "N/A"
	}
	return round3(mean(xs))
}
