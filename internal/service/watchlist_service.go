package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
)

// WatchlistFetcher trae la watchlist de un usuario como urls de película.
// En producción lo implementa el scraper; los tests inyectan listas fijas.
type WatchlistFetcher interface {
	FetchWatchlist(ctx context.Context, username string) ([]string, error)
}

// Modos de selección de picks.
const (
	PickTypeRandom         = "random"
	PickTypeRecommendation = "recommendation"

	OverlapYes = "y"
	OverlapNo  = "n"
)

// WatchlistPick es un pick aleatorio resuelto contra el catálogo.
type WatchlistPick struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
	Poster      string `json:"poster"`
}

// WatchlistService resuelve picks y recomendaciones sobre watchlists.
type WatchlistService struct {
	fetcher   WatchlistFetcher
	movies    CatalogSource
	recommend *RecommendService
}

func NewWatchlistService(fetcher WatchlistFetcher, movies CatalogSource, recommend *RecommendService) *WatchlistService {
	return &WatchlistService{fetcher: fetcher, movies: movies, recommend: recommend}
}

// PicksRequest es el cuerpo de /api/get-watchlist-picks.
type PicksRequest struct {
	Usernames []string `json:"usernames"`
	Overlap   string   `json:"overlap"`   // "y" intersecta, "n" encadena
	PickType  string   `json:"pick_type"` // "random" o "recommendation"
	NumPicks  int      `json:"num_picks"`
}

// GetPicks trae las watchlists en paralelo, arma el pool según overlap y
// devuelve picks aleatorios o recomendados según pick_type.
func (s *WatchlistService) GetPicks(ctx context.Context, req PicksRequest) ([]WatchlistPick, []models.RecommendationItem, error) {
	if len(req.Usernames) == 0 {
		return nil, nil, fmt.Errorf("se necesita al menos un username")
	}
	if req.NumPicks <= 0 {
		req.NumPicks = 5
	}

	watchlists, err := s.fetchAll(ctx, req.Usernames)
	if err != nil {
		return nil, nil, err
	}

	pool, err := poolURLs(watchlists, req.Overlap)
	if err != nil {
		return nil, nil, err
	}

	switch req.PickType {
	case PickTypeRecommendation:
		items, err := s.recommendPicks(ctx, req.Usernames, pool, req.NumPicks)
		return nil, items, err
	default:
		picks, err := s.randomPicks(ctx, pool, req.NumPicks)
		return picks, nil, err
	}
}

// fetchAll scrapea todas las watchlists en paralelo. Una watchlist vacía o
// un username inexistente cortan todo el request.
func (s *WatchlistService) fetchAll(ctx context.Context, usernames []string) ([][]string, error) {
	watchlists := make([][]string, len(usernames))
	errs := make([]error, len(usernames))

	var wg sync.WaitGroup
	for i, username := range usernames {
		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()
			urls, err := s.fetcher.FetchWatchlist(ctx, username)
			if err == nil && len(urls) == 0 {
				err = &recommender.WatchlistEmptyError{Username: username}
			}
			watchlists[i], errs[i] = urls, err
		}(i, username)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return watchlists, nil
}

// poolURLs combina las watchlists: "y" se queda con la intersección estricta,
// cualquier otra cosa encadena todo (con duplicados entre usuarios, igual
// que el comportamiento histórico del endpoint).
func poolURLs(watchlists [][]string, overlap string) ([]string, error) {
	if overlap != OverlapYes {
		var all []string
		for _, wl := range watchlists {
			all = append(all, wl...)
		}
		return all, nil
	}

	count := make(map[string]int)
	for _, wl := range watchlists {
		seen := make(map[string]bool, len(wl))
		for _, raw := range wl {
			u := recommender.NormalizeURL(raw)
			if !seen[u] {
				seen[u] = true
				count[u]++
			}
		}
	}

	var common []string
	for _, raw := range watchlists[0] {
		u := recommender.NormalizeURL(raw)
		if count[u] == len(watchlists) {
			common = append(common, raw)
			count[u] = 0 // evita duplicar si la primera watchlist repite la url
		}
	}
	if len(common) == 0 {
		return nil, &recommender.WatchlistOverlapError{}
	}
	return common, nil
}

// randomPicks samplea sin reposición y resuelve metadata contra el catálogo.
// Si piden más picks de los que hay, se devuelven todos los que haya.
func (s *WatchlistService) randomPicks(ctx context.Context, pool []string, numPicks int) ([]WatchlistPick, error) {
	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	byURL := make(map[string]models.MovieRecord, len(catalog))
	for _, m := range catalog {
		byURL[recommender.NormalizeURL(m.URL)] = m
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if numPicks > len(shuffled) {
		log.Printf("[watchlist] pidieron %d picks pero el pool tiene %d", numPicks, len(shuffled))
		numPicks = len(shuffled)
	}

	picks := make([]WatchlistPick, 0, numPicks)
	taken := make(map[string]bool, numPicks)
	for _, raw := range shuffled {
		if len(picks) == numPicks {
			break
		}
		u := recommender.NormalizeURL(raw)
		if taken[u] {
			continue
		}
		taken[u] = true

		if m, ok := byURL[u]; ok {
			picks = append(picks, WatchlistPick{
				URL:         m.URL,
				Title:       m.Title,
				ReleaseYear: m.ReleaseYear,
				Poster:      m.Poster,
			})
			continue
		}
		// película fuera del catálogo: se devuelve igual, solo con la url
		picks = append(picks, WatchlistPick{URL: raw})
	}
	return picks, nil
}

// recommendPicks puntúa el pool con el modelo de cada usuario y mergea.
func (s *WatchlistService) recommendPicks(ctx context.Context, usernames []string, pool []string, numPicks int) ([]models.RecommendationItem, error) {
	if len(usernames) == 1 {
		return s.recommend.RecommendFromWatchlist(ctx, numPicks, usernames[0], recommender.ModelPersonalized, pool)
	}

	sets := make([]models.RecommendationSet, 0, len(usernames))
	var firstErr error
	for _, username := range usernames {
		items, err := s.recommend.RecommendFromWatchlist(ctx, perUserMergePool, username, recommender.ModelPersonalized, pool)
		if err != nil {
			log.Printf("[watchlist] picks de %s fallaron: %v", username, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sets = append(sets, models.RecommendationSet{Username: username, Items: items})
	}
	if len(sets) == 0 {
		return nil, firstErr
	}
	return recommender.Merge(numPicks, sets), nil
}
