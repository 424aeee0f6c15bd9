package recommender

import (
	"fmt"
	"sort"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/genres"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// Buckets de popularidad sobre letterboxd_rating_count.
const (
	PopularityLow    = "low"
	PopularityMedium = "medium"
	PopularityHigh   = "high"
)

// Cortes de los buckets, como percentiles de la distribución de rating_count
// del pool no visto: low = [0, p40), medium = [p40, p80), high = [p80, ∞).
const (
	bucketMediumPercentile = 40
	bucketHighPercentile   = 80
)

// popularityLevelMap es el modo legacy: nivel 1-6 -> fracción superior del
// pool por rating_count.
var popularityLevelMap = map[int]float64{
	1: 1,
	2: 0.7,
	3: 0.4,
	4: 0.2,
	5: 0.1,
	6: 0.05,
}

// HighlyRatedFloor es el piso de rating agregado del filtro highly_rated.
const HighlyRatedFloor = 3.5

// FilterOptions son los filtros del pool de candidatos.
type FilterOptions struct {
	Genres          map[string]bool
	ContentTypes    map[string]bool
	MinReleaseYear  int
	MaxReleaseYear  int
	MinRuntime      int
	MaxRuntime      int
	Popularity      []string // buckets low/medium/high; vacío = sin filtro
	PopularityLevel int      // modo legacy 1-6; > 0 pisa a Popularity
	HighlyRated     bool
	AllowRewatches  bool
}

// seenKey es la defensa secundaria contra drift de ids/urls entre scrapes:
// una película vista se reconoce también por (title, release_year, runtime).
type seenKey struct {
	title   string
	year    int
	runtime int
}

// BuildPool arma el pool de películas elegibles a partir del catálogo, las
// filas del usuario y los filtros. No muta el catálogo: devuelve copias.
// Si después de todas las etapas el pool queda vacío devuelve FilterError,
// que es distinto de un error de datos: el usuario puede aflojar filtros.
func BuildPool(catalog []models.MovieRecord, rows []models.ProcessedUserRow, unrated []int, opts FilterOptions) ([]models.MovieRecord, error) {

	// etapa 1: excluir vistas (puntuadas + loggeadas sin rating)
	pool := make([]models.MovieRecord, 0, len(catalog))
	if opts.AllowRewatches {
		pool = append(pool, catalog...)
	} else {
		seenIDs := make(map[int]bool, len(rows)+len(unrated))
		seenTuples := make(map[seenKey]bool, len(rows))
		for i := range rows {
			seenIDs[rows[i].MovieID] = true
			seenTuples[seenKey{rows[i].Title, rows[i].ReleaseYear, rows[i].Runtime}] = true
		}
		for _, id := range unrated {
			seenIDs[id] = true
		}

		for i := range catalog {
			m := catalog[i]
			if seenIDs[m.MovieID] || seenTuples[seenKey{m.Title, m.ReleaseYear, m.Runtime}] {
				continue
			}
			pool = append(pool, m)
		}
	}

	// la base de percentiles de popularidad es el pool no visto, antes del
	// resto de los filtros
	popKeep, err := popularityPredicate(pool, opts)
	if err != nil {
		return nil, err
	}

	out := pool[:0]
	for i := range pool {
		m := pool[i]

		// etapa 2: al menos un género pedido
		if !hasAnyGenre(m.Genres, opts.Genres) {
			continue
		}

		// etapa 3: géneros opt-in no pedidos quedan fuera aunque hayan
		// matcheado por otro género
		if hasSpecialGenre(m.Genres, opts.Genres) {
			continue
		}

		// etapa 4: content type
		if !opts.ContentTypes[m.ContentType] {
			continue
		}

		// etapas 5 y 6: rangos inclusivos de año y runtime
		if m.ReleaseYear < opts.MinReleaseYear || m.ReleaseYear > opts.MaxReleaseYear {
			continue
		}
		if m.Runtime < opts.MinRuntime || m.Runtime > opts.MaxRuntime {
			continue
		}

		// etapa 7: popularidad
		if !popKeep(m.LetterboxdRatingCount) {
			continue
		}

		// etapa 8: piso de rating agregado
		if opts.HighlyRated && (m.LetterboxdRating == nil || *m.LetterboxdRating < HighlyRatedFloor) {
			continue
		}

		out = append(out, m)
	}

	if len(out) == 0 {
		return nil, &FilterError{Msg: "ninguna película cumple los filtros seleccionados"}
	}

	// out comparte backing array con pool (que ya es una copia del catálogo)
	return out, nil
}

func hasAnyGenre(mask int, selected map[string]bool) bool {
	for g := range selected {
		if selected[g] && genres.Has(mask, g) {
			return true
		}
	}
	return false
}

func hasSpecialGenre(mask int, selected map[string]bool) bool {
	for _, g := range genres.SpecialGenres {
		if !selected[g] && genres.Has(mask, g) {
			return true
		}
	}
	return false
}

// popularityPredicate construye el predicado de la etapa 7 a partir de la
// distribución de rating_count del pool.
func popularityPredicate(pool []models.MovieRecord, opts FilterOptions) (func(int) bool, error) {
	counts := make([]float64, len(pool))
	for i := range pool {
		counts[i] = float64(pool[i].LetterboxdRatingCount)
	}

	// modo legacy: top X% por rating_count
	if opts.PopularityLevel > 0 {
		frac, ok := popularityLevelMap[opts.PopularityLevel]
		if !ok {
			return nil, fmt.Errorf("nivel de popularidad inválido: %d", opts.PopularityLevel)
		}
		threshold := percentile(counts, 100*(1-frac))
		return func(c int) bool { return float64(c) >= threshold }, nil
	}

	if len(opts.Popularity) == 0 {
		return func(int) bool { return true }, nil
	}

	p40 := percentile(counts, bucketMediumPercentile)
	p80 := percentile(counts, bucketHighPercentile)

	want := make(map[string]bool, len(opts.Popularity))
	for _, b := range opts.Popularity {
		switch b {
		case PopularityLow, PopularityMedium, PopularityHigh:
			want[b] = true
		default:
			return nil, fmt.Errorf("bucket de popularidad inválido: %q", b)
		}
	}

	return func(c int) bool {
		v := float64(c)
		switch {
		case v < p40:
			return want[PopularityLow]
		case v < p80:
			return want[PopularityMedium]
		default:
			return want[PopularityHigh]
		}
	}, nil
}

// percentile con interpolación lineal (mismo resultado que np.percentile).
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
