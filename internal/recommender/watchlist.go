package recommender

import (
	"net/url"
	"strings"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// Límites de la predicción por url explícita.
const (
	MinPredictionURLs = 1
	MaxPredictionURLs = 10
)

// NormalizeURL lleva cualquier representación de una url de película
// (absoluta, con o sin www, relativa, con o sin slash final) a la forma
// canónica path-only "/film/x/". Las urls del catálogo y las de las
// watchlists llegan en formas distintas según el scrape y tienen que caer
// en la misma clave antes de intersectar.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if u, err := url.Parse(s); err == nil && u.Host != "" {
		s = u.Path
	} else {
		// sin scheme: puede venir "letterboxd.com/film/x/"
		lower := strings.ToLower(s)
		for _, host := range []string{"www.letterboxd.com", "letterboxd.com"} {
			if strings.HasPrefix(lower, host) {
				s = s[len(host):]
				break
			}
		}
	}

	// colapsa dobles slashes que dejan algunos scrapes
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}

	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}

// intersectByURL devuelve las películas del catálogo cuya url normalizada
// está en el set pedido. No muta el catálogo.
func intersectByURL(catalog []models.MovieRecord, urls []string) []models.MovieRecord {
	want := make(map[string]bool, len(urls))
	for _, u := range urls {
		if n := NormalizeURL(u); n != "" {
			want[n] = true
		}
	}

	var pool []models.MovieRecord
	for i := range catalog {
		if want[NormalizeURL(catalog[i].URL)] {
			pool = append(pool, catalog[i])
		}
	}
	return pool
}

// BuildWatchlistPool restringe el catálogo a la watchlist del usuario. Una
// intersección vacía acá significa "nada de tu watchlist está en nuestro
// catálogo", que es un error distinto al de filtros demasiado estrictos.
func BuildWatchlistPool(catalog []models.MovieRecord, watchlistURLs []string, username string) ([]models.MovieRecord, error) {
	pool := intersectByURL(catalog, watchlistURLs)
	if len(pool) == 0 {
		return nil, &WatchlistEmptyError{Username: username}
	}
	return pool, nil
}

// BuildPredictionPool es el caso degenerado de watchlist: una lista chica y
// explícita de urls. El error propio permite al caller responder "esos
// títulos no están en el catálogo" en vez de un mensaje genérico.
func BuildPredictionPool(catalog []models.MovieRecord, urls []string) ([]models.MovieRecord, error) {
	pool := intersectByURL(catalog, urls)
	if len(pool) == 0 {
		return nil, &PredictionListError{}
	}
	return pool, nil
}
