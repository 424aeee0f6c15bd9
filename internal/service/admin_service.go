package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
)

// AllRatingsSource trae ratings de todos los usuarios (para el modelo
// general).
type AllRatingsSource interface {
	GetAllRatings(ctx context.Context, maxRows int) ([]models.UserRatingRecord, error)
}

// CatalogInvalidator invalida el snapshot del catálogo en memoria.
type CatalogInvalidator interface {
	InvalidateCatalog()
}

// Defaults del reentrenamiento general.
const (
	DefaultMinRatingsPerUser = 5
	DefaultMaxTrainingRows   = 200000
)

// AdminService concentra el mantenimiento operativo: modelo general,
// caches y nodos.
type AdminService struct {
	ratings   AllRatingsSource
	movies    CatalogSource
	catalog   CatalogInvalidator
	general   *recommender.GeneralModel
	recommend *RecommendService
	profiles  *ProfileService
}

func NewAdminService(
	ratings AllRatingsSource,
	movies CatalogSource,
	catalog CatalogInvalidator,
	general *recommender.GeneralModel,
	recommend *RecommendService,
	profiles *ProfileService,
) *AdminService {
	return &AdminService{
		ratings:   ratings,
		movies:    movies,
		catalog:   catalog,
		general:   general,
		recommend: recommend,
		profiles:  profiles,
	}
}

// GeneralModelStatus reporta el estado del artefacto en disco, junto con el
// contrato de features con el que se entrena y puntúa.
func (s *AdminService) GeneralModelStatus() models.GeneralModelStatus {
	path, loaded, forest := s.general.Status()
	status := models.GeneralModelStatus{
		Path:     path,
		Loaded:   loaded,
		Features: recommender.FeatureNames(),
	}
	if forest != nil {
		status.NumTrees = len(forest.Trees)
		status.TrainedAt = forest.TrainedAt
		status.SampleSize = forest.Rows
	}
	return status
}

// RetrainGeneral reentrena el modelo general con los ratings de toda la
// base, lo persiste y recarga la copia en memoria. Es la versión endpoint
// de cmd/traingeneral.
func (s *AdminService) RetrainGeneral(ctx context.Context, req models.RetrainGeneralRequest) (*models.RetrainGeneralResult, error) {
	if req.MinRatingsPerUser <= 0 {
		req.MinRatingsPerUser = DefaultMinRatingsPerUser
	}
	if req.MaxRows <= 0 {
		req.MaxRows = DefaultMaxTrainingRows
	}

	start := time.Now()

	catalog, err := s.movies.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	rated, err := s.ratings.GetAllRatings(ctx, req.MaxRows)
	if err != nil {
		return nil, err
	}

	rows := joinWithCatalog(rated, catalog)
	rows = dropSparseUsers(rows, req.MinRatingsPerUser)
	if len(rows) < recommender.MinTrainingRows {
		return nil, fmt.Errorf("solo quedaron %d filas de entrenamiento", len(rows))
	}

	forest, metrics, err := trainGeneral(rows)
	if err != nil {
		return nil, err
	}
	if err := forest.Save(s.general.Path()); err != nil {
		return nil, fmt.Errorf("guardando el modelo general: %w", err)
	}
	s.general.Reload()

	log.Printf("[admin] modelo general reentrenado con %d filas en %s", len(rows), time.Since(start))
	return &models.RetrainGeneralResult{
		Rows:            len(rows),
		RMSETest:        metrics.RMSETest,
		RoundedRMSETest: metrics.RoundedRMSETest,
		Path:            s.general.Path(),
		Seconds:         time.Since(start).Seconds(),
	}, nil
}

// ReloadGeneral tira la copia en memoria; el próximo request la vuelve a
// cargar del disco.
func (s *AdminService) ReloadGeneral() {
	s.general.Reload()
	log.Printf("[admin] modelo general marcado para recarga")
}

// InvalidateCatalog descarta el snapshot del catálogo en memoria.
func (s *AdminService) InvalidateCatalog() {
	s.catalog.InvalidateCatalog()
	log.Printf("[admin] snapshot del catálogo invalidado")
}

// InvalidateProfile vacía el cache de ratings de un usuario.
func (s *AdminService) InvalidateProfile(ctx context.Context, username string) error {
	return s.profiles.InvalidateProfile(ctx, username)
}

// PingNodes chequea cada nodo de recomendación configurado.
func (s *AdminService) PingNodes(ctx context.Context) []models.NodePingResult {
	return s.recommend.PingNodes(ctx)
}

// dropSparseUsers filtra usuarios con pocas filas: meten ruido en el modelo
// general sin aportar señal.
func dropSparseUsers(rows []models.ProcessedUserRow, minPerUser int) []models.ProcessedUserRow {
	perUser := make(map[string]int, 64)
	for _, r := range rows {
		perUser[r.Username]++
	}
	out := rows[:0]
	for _, r := range rows {
		if perUser[r.Username] >= minPerUser {
			out = append(out, r)
		}
	}
	return out
}

// trainGeneral entrena sobre la base completa con un split 80/20 simple. A
// esta escala no hace falta el split triple del modelo personalizado.
func trainGeneral(rows []models.ProcessedUserRow) (*recommender.Forest, models.ModelMetrics, error) {
	var metrics models.ModelMetrics

	X, y, err := recommender.PrepareTrainingMatrix(rows)
	if err != nil {
		return nil, metrics, err
	}

	rng := rand.New(rand.NewSource(recommender.TrainSeed))
	perm := rng.Perm(len(X))
	nTest := len(X) / 5
	if nTest < 1 {
		nTest = 1
	}

	XTrain := make([][]float64, 0, len(X)-nTest)
	yTrain := make([]float64, 0, len(X)-nTest)
	XTest := make([][]float64, 0, nTest)
	yTest := make([]float64, 0, nTest)
	for k, i := range perm {
		if k < nTest {
			XTest = append(XTest, X[i])
			yTest = append(yTest, y[i])
		} else {
			XTrain = append(XTrain, X[i])
			yTrain = append(yTrain, y[i])
		}
	}

	forest := recommender.FitForest(XTrain, yTrain, recommender.TrainSeed)

	pred := forest.Predict(XTest)
	metrics.RMSETest = recommender.RMSE(pred, yTest)
	metrics.RoundedRMSETest = recommender.RMSE(recommender.RoundHalfAll(pred), yTest)

	return forest, metrics, nil
}
