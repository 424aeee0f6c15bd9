package recommender

import (
	"fmt"
	"math"
	"sort"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// identityKey desambigua títulos repetidos (re-estrenos, remasters con otro
// corte): solo sobrevive la instancia mejor puntuada por tupla.
type identityKey struct {
	title   string
	year    int
	runtime int
}

// Score corre el modelo sobre el pool filtrado y post-procesa: clip al
// rango válido [0.5, 5], formato fijo de 2 decimales, orden descendente,
// dedupe por (title, release_year, runtime) y truncado a n. El orden de
// esos pasos importa: truncar antes de dedupear entregaría menos resultados
// de los pedidos.
func Score(pool []models.MovieRecord, model Model, n int) ([]models.RecommendationItem, error) {
	X, err := PrepareMovieMatrix(pool)
	if err != nil {
		return nil, err
	}
	pred := model.Predict(X)

	type scored struct {
		idx    int
		rating float64
	}
	ranked := make([]scored, len(pool))
	for i, p := range pred {
		ranked[i] = scored{idx: i, rating: clipRating(p)}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].rating > ranked[b].rating
	})

	seen := make(map[identityKey]bool, len(ranked))
	items := make([]models.RecommendationItem, 0, n)
	for _, s := range ranked {
		m := &pool[s.idx]
		key := identityKey{m.Title, m.ReleaseYear, m.Runtime}
		if seen[key] {
			continue
		}
		seen[key] = true

		items = append(items, models.RecommendationItem{
			Title:           m.Title,
			Poster:          m.Poster,
			ReleaseYear:     m.ReleaseYear,
			PredictedRating: fmt.Sprintf("%.2f", s.rating),
			URL:             m.URL,
		})
		if len(items) == n {
			break
		}
	}

	return items, nil
}

// clipRating recorta al rango válido de ratings antes de cualquier redondeo.
func clipRating(v float64) float64 {
	return math.Min(5, math.Max(0.5, v))
}
