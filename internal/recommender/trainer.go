package recommender

import (
	"math"
	"math/rand"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// splitIndices parte n índices en (resto, held-out) con una permutación
// reproducible del rng.
func splitIndices(n int, testFrac float64, rng *rand.Rand) ([]int, []int) {
	perm := rng.Perm(n)
	if n < 2 {
		return perm, nil
	}
	nTest := int(math.Ceil(float64(n) * testFrac))
	if nTest >= n {
		nTest = n - 1
	}
	if nTest < 1 {
		nTest = 1
	}
	return perm[nTest:], perm[:nTest]
}

func gather(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	outX := make([][]float64, len(idx))
	outY := make([]float64, len(idx))
	for k, i := range idx {
		outX[k] = X[i]
		outY[k] = y[i]
	}
	return outX, outY
}

// TrainPersonalized entrena el modelo de un usuario sobre sus propias filas
// procesadas. Split 80/20, y el 20% de nuevo 50/50 en test/validación
// (neto ~80/10/10). Todo sembrado con TrainSeed: el mismo input produce las
// mismas métricas.
//
// El mínimo de filas se valida acá y no antes: un perfil corto solo es un
// problema cuando hay que entrenar con él, no cuando el modelo general va a
// puntuar.
func TrainPersonalized(rows []models.ProcessedUserRow) (*Forest, models.ModelMetrics, error) {
	var metrics models.ModelMetrics

	if len(rows) < MinTrainingRows {
		username := ""
		if len(rows) > 0 {
			username = rows[0].Username
		}
		return nil, metrics, &UserProfileError{
			Username: username,
			Reason:   "no tiene suficientes películas puntuadas",
		}
	}

	X, y, err := PrepareTrainingMatrix(rows)
	if err != nil {
		return nil, metrics, err
	}

	rng := rand.New(rand.NewSource(TrainSeed))
	trainIdx, heldIdx := splitIndices(len(X), 0.2, rng)

	XTrain, yTrain := gather(X, y, trainIdx)
	XHeld, yHeld := gather(X, y, heldIdx)

	testIdx, valIdx := splitIndices(len(XHeld), 0.5, rng)
	XTest, yTest := gather(XHeld, yHeld, testIdx)
	XVal, yVal := gather(XHeld, yHeld, valIdx)

	model := FitForest(XTrain, yTrain, TrainSeed)

	predTest := model.Predict(XTest)
	metrics.RMSETest = RMSE(predTest, yTest)
	metrics.RoundedRMSETest = RMSE(RoundHalfAll(predTest), yTest)

	predVal := model.Predict(XVal)
	metrics.RMSEVal = RMSE(predVal, yVal)
	metrics.RoundedRMSEVal = RMSE(RoundHalfAll(predVal), yVal)

	return model, metrics, nil
}

func RoundHalfAll(pred []float64) []float64 {
	out := make([]float64, len(pred))
	for i, v := range pred {
		out[i] = roundHalf(v)
	}
	return out
}
