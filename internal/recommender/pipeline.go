package recommender

import (
	"fmt"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// Tipos de modelo.
const (
	ModelPersonalized = "personalized"
	ModelGeneral      = "general"
)

// RunPipeline corre el pipeline completo de un usuario sobre datos ya
// cargados: modelo (entrenado al vuelo o general), pool filtrado y scoring.
// Es la unidad que se despacha a un nodo de recomendación o se corre
// in-process; no toca red ni disco salvo la carga lazy del modelo general.
func RunPipeline(
	catalog []models.MovieRecord,
	rows []models.ProcessedUserRow,
	unrated []int,
	modelType string,
	numRecs int,
	opts FilterOptions,
	general *GeneralModel,
) ([]models.RecommendationItem, error) {

	if numRecs < 1 {
		return nil, fmt.Errorf("la cantidad de recomendaciones debe ser mayor a 0")
	}

	model, err := resolveModel(modelType, rows, general)
	if err != nil {
		return nil, err
	}

	pool, err := BuildPool(catalog, rows, unrated, opts)
	if err != nil {
		return nil, err
	}

	return Score(pool, model, numRecs)
}

// RunWatchlistPipeline es RunPipeline con el pool restringido a urls en vez
// del catálogo menos lo visto.
func RunWatchlistPipeline(
	catalog []models.MovieRecord,
	rows []models.ProcessedUserRow,
	modelType string,
	numRecs int,
	watchlistURLs []string,
	username string,
	general *GeneralModel,
) ([]models.RecommendationItem, error) {

	if numRecs < 1 {
		return nil, fmt.Errorf("la cantidad de recomendaciones debe ser mayor a 0")
	}

	model, err := resolveModel(modelType, rows, general)
	if err != nil {
		return nil, err
	}

	pool, err := BuildWatchlistPool(catalog, watchlistURLs, username)
	if err != nil {
		return nil, err
	}

	return Score(pool, model, numRecs)
}

// RunPredictionPipeline puntúa una lista corta y explícita de urls.
func RunPredictionPipeline(
	catalog []models.MovieRecord,
	rows []models.ProcessedUserRow,
	urls []string,
	general *GeneralModel,
) ([]models.RecommendationItem, error) {

	if len(urls) < MinPredictionURLs || len(urls) > MaxPredictionURLs {
		return nil, fmt.Errorf("se aceptan entre %d y %d urls", MinPredictionURLs, MaxPredictionURLs)
	}

	model, err := resolveModel(ModelPersonalized, rows, general)
	if err != nil {
		return nil, err
	}

	pool, err := BuildPredictionPool(catalog, urls)
	if err != nil {
		return nil, err
	}

	return Score(pool, model, len(pool))
}

// resolveModel entrena el personalizado o carga el general. Nunca cae de
// uno al otro en silencio.
func resolveModel(modelType string, rows []models.ProcessedUserRow, general *GeneralModel) (Model, error) {
	switch modelType {
	case ModelGeneral:
		return general.Load()
	case ModelPersonalized, "":
		model, _, err := TrainPersonalized(rows)
		return model, err
	default:
		return nil, fmt.Errorf("tipo de modelo desconocido: %q", modelType)
	}
}
