package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/cluster"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
)

const (
	// DefaultNumRecs se usa cuando el caller no pide una cantidad.
	DefaultNumRecs = 100
	// MaxNumRecs limita lo que se puede pedir por request.
	MaxNumRecs = 500
	// perUserMergePool es cuántas recomendaciones genera cada usuario en un
	// request multi-usuario antes de intersectar: con listas cortas la
	// intersección se queda sin candidatos enseguida.
	perUserMergePool = 500
	// nodeTimeout por pipeline despachado a un nodo.
	nodeTimeout = 60 * time.Second
)

// RecommendService coordina los pipelines por usuario: fetch de perfil
// (cacheado), fan-out a nodos de recomendación o goroutines locales, y el
// merge como barrera de sincronización.
type RecommendService struct {
	profiles *ProfileService
	movies   CatalogSource
	general  *recommender.GeneralModel
	// direcciones TCP de los nodos de recomendación; vacío = correr local
	nodeAddrs []string
	// política de producto: un solo usuario nunca repite vistas
	singleUserNoRewatch bool
}

func NewRecommendService(
	profiles *ProfileService,
	movies CatalogSource,
	general *recommender.GeneralModel,
	nodeAddrs []string,
	singleUserNoRewatch bool,
) *RecommendService {
	return &RecommendService{
		profiles:            profiles,
		movies:              movies,
		general:             general,
		nodeAddrs:           nodeAddrs,
		singleUserNoRewatch: singleUserNoRewatch,
	}
}

// RecRequest son los parámetros de /api/get-recommendations.
type RecRequest struct {
	Usernames       []string `json:"usernames"`
	NumRecs         int      `json:"num_recs"`
	ModelType       string   `json:"model_type"`
	Genres          []string `json:"genres"`
	ContentTypes    []string `json:"content_types"`
	MinReleaseYear  int      `json:"min_release_year"`
	MaxReleaseYear  int      `json:"max_release_year"`
	MinRuntime      int      `json:"min_runtime"`
	MaxRuntime      int      `json:"max_runtime"`
	Popularity      []string `json:"popularity"`
	PopularityLevel int      `json:"popularity_level"` // modo legacy 1-6
	HighlyRated     bool     `json:"highly_rated"`
	AllowRewatches  bool     `json:"allow_rewatches"`
}

func (req *RecRequest) filterOptions() recommender.FilterOptions {
	return recommender.FilterOptions{
		Genres:          toSet(req.Genres),
		ContentTypes:    toSet(req.ContentTypes),
		MinReleaseYear:  req.MinReleaseYear,
		MaxReleaseYear:  req.MaxReleaseYear,
		MinRuntime:      req.MinRuntime,
		MaxRuntime:      req.MaxRuntime,
		Popularity:      req.Popularity,
		PopularityLevel: req.PopularityLevel,
		HighlyRated:     req.HighlyRated,
		AllowRewatches:  req.AllowRewatches,
	}
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}

// PerUserResult es lo que sale de cada pipeline en el fan-out.
type PerUserResult struct {
	Set models.RecommendationSet
	Err error
}

// Recommend genera recomendaciones para uno o varios usuarios. Con varios,
// los pipelines corren en paralelo (nodos TCP si hay configurados,
// goroutines locales si no) y el merge espera a todos. El catálogo es el
// único estado compartido y es de solo lectura.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecommendationItem, error) {
	if len(req.Usernames) == 0 {
		return nil, fmt.Errorf("se necesita al menos un username")
	}
	if req.NumRecs <= 0 {
		req.NumRecs = DefaultNumRecs
	} else if req.NumRecs > MaxNumRecs {
		req.NumRecs = MaxNumRecs
	}

	opts := req.filterOptions()
	single := len(req.Usernames) == 1
	if single && s.singleUserNoRewatch {
		opts.AllowRewatches = false
	}

	perUser := req.NumRecs
	if !single {
		perUser = perUserMergePool
	}

	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := s.fanOut(ctx, req.Usernames, catalog, req.ModelType, perUser, opts)

	var sets []models.RecommendationSet
	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			// en un merge, la falla de un usuario no tumba a los demás;
			// con un solo usuario pedido sí es terminal
			log.Printf("[recommend] pipeline de %s falló: %v", res.Set.Username, res.Err)
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		sets = append(sets, res.Set)
	}

	if len(sets) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("ningún pipeline produjo resultados")
	}

	var items []models.RecommendationItem
	if single {
		items = sets[0].Items
	} else {
		items = recommender.Merge(req.NumRecs, sets)
	}

	log.Printf("[recommend] %d usuarios -> %d recomendaciones en %s",
		len(req.Usernames), len(items), time.Since(start))
	return items, nil
}

// RecommendPerUser expone los sets por usuario sin mergear (lo usa el
// endpoint websocket para ir informando progreso).
func (s *RecommendService) RecommendPerUser(ctx context.Context, req RecRequest) ([]PerUserResult, []models.MovieRecord, error) {
	opts := req.filterOptions()
	if len(req.Usernames) == 1 && s.singleUserNoRewatch {
		opts.AllowRewatches = false
	}

	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	perUser := req.NumRecs
	if len(req.Usernames) > 1 {
		perUser = perUserMergePool
	}
	return s.fanOut(ctx, req.Usernames, catalog, req.ModelType, perUser, opts), catalog, nil
}

// fanOut corre el pipeline de cada usuario en paralelo y espera a todos.
func (s *RecommendService) fanOut(
	ctx context.Context,
	usernames []string,
	catalog []models.MovieRecord,
	modelType string,
	numRecs int,
	opts recommender.FilterOptions,
) []PerUserResult {

	results := make([]PerUserResult, len(usernames))

	var wg sync.WaitGroup
	for i, username := range usernames {
		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()

			items, err := s.runUserPipeline(ctx, i, username, catalog, modelType, numRecs, opts)
			results[i] = PerUserResult{
				Set: models.RecommendationSet{Username: username, Items: items},
				Err: err,
			}
		}(i, username)
	}
	wg.Wait()

	return results
}

// runUserPipeline resuelve el perfil y corre el pipeline, en un nodo si hay
// configurados (round-robin por índice) o in-process.
func (s *RecommendService) runUserPipeline(
	ctx context.Context,
	i int,
	username string,
	catalog []models.MovieRecord,
	modelType string,
	numRecs int,
	opts recommender.FilterOptions,
) ([]models.RecommendationItem, error) {

	profile, err := s.profiles.GetProfile(ctx, username, catalog)
	if err != nil {
		return nil, err
	}

	if len(s.nodeAddrs) == 0 {
		return recommender.RunPipeline(catalog, profile.Rows, profile.Unrated, modelType, numRecs, opts, s.general)
	}

	addr := s.nodeAddrs[i%len(s.nodeAddrs)]
	ctxTimeout, cancel := context.WithTimeout(ctx, nodeTimeout)
	defer cancel()

	resp, err := cluster.SendTask(ctxTimeout, addr, &cluster.RecTask{
		Username:  username,
		NumRecs:   numRecs,
		ModelType: modelType,
		Filters:   opts,
		Rows:      profile.Rows,
		Unrated:   profile.Unrated,
	})
	if err != nil {
		return nil, fmt.Errorf("nodo %s: %w", addr, err)
	}
	if resp.Error != "" {
		return nil, cluster.KindToError(resp.ErrKind, resp.Error, username)
	}
	return resp.Items, nil
}

// RecommendFromWatchlist restringe el pool a la watchlist del usuario.
// Siempre corre in-process: el pool ya viene acotado.
func (s *RecommendService) RecommendFromWatchlist(
	ctx context.Context,
	numRecs int,
	username string,
	modelType string,
	watchlistURLs []string,
) ([]models.RecommendationItem, error) {

	if numRecs <= 0 {
		numRecs = DefaultNumRecs
	}

	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, username, catalog)
	if err != nil {
		return nil, err
	}

	return recommender.RunWatchlistPipeline(catalog, profile.Rows, modelType, numRecs, watchlistURLs, username, s.general)
}

// Predict puntúa una lista explícita de 1 a 10 urls con el modelo del
// usuario.
func (s *RecommendService) Predict(ctx context.Context, username string, urls []string) ([]models.RecommendationItem, error) {
	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, username, catalog)
	if err != nil {
		return nil, err
	}

	return recommender.RunPredictionPipeline(catalog, profile.Rows, urls, s.general)
}

// PingNodes chequea la salud de los nodos configurados.
func (s *RecommendService) PingNodes(ctx context.Context) []models.NodePingResult {
	out := make([]models.NodePingResult, len(s.nodeAddrs))

	var wg sync.WaitGroup
	for i, addr := range s.nodeAddrs {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()

			ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			start := time.Now()
			_, err := cluster.SendTask(ctxPing, addr, &cluster.RecTask{Ping: true})
			res := models.NodePingResult{Addr: addr, Alive: err == nil}
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Latency = time.Since(start).String()
			}
			out[i] = res
		}(i, addr)
	}
	wg.Wait()

	return out
}

// IsUserCorrectable distingue errores que el usuario puede arreglar
// aflojando filtros de fallas reales del sistema.
func IsUserCorrectable(err error) bool {
	var fe *recommender.FilterError
	var oe *recommender.WatchlistOverlapError
	var pe *recommender.PredictionListError
	return errors.As(err, &fe) || errors.As(err, &oe) || errors.As(err, &pe)
}
