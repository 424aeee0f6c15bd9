package recommender

import (
	"encoding/gob"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"
)

// Hiperparámetros del bosque. Son constantes de tuning calcadas del modelo
// en producción; quedan fijas para que las métricas sean reproducibles con
// la misma semilla.
const (
	NumTrees        = 100
	MaxTreeDepth    = 10
	MinSamplesSplit = 10

	// TrainSeed alimenta el split y el bootstrap de cada árbol. Entrenar dos
	// veces con las mismas filas da métricas bit a bit iguales.
	TrainSeed = 0
)

// Model es lo que consume el scorer: bosque personalizado o modelo general,
// mismo contrato de features.
type Model interface {
	Predict(X [][]float64) []float64
}

// Forest es un ensemble de árboles de regresión con bagging.
type Forest struct {
	Trees     []*TreeNode
	Rows      int       // filas de entrenamiento
	TrainedAt time.Time // solo informativo (status de admin)
}

// FitForest entrena el bosque: un bootstrap por árbol, todas las features
// consideradas en cada corte.
func FitForest(X [][]float64, y []float64, seed int64) *Forest {
	n := len(X)
	rng := rand.New(rand.NewSource(seed))

	trees := make([]*TreeNode, NumTrees)
	sample := make([]int, n)
	for t := 0; t < NumTrees; t++ {
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		trees[t] = buildTree(X, y, sample, 0, MaxTreeDepth, MinSamplesSplit)
	}

	return &Forest{
		Trees:     trees,
		Rows:      n,
		TrainedAt: time.Now().UTC(),
	}
}

// Predict promedia las predicciones de todos los árboles.
func (f *Forest) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		sum := 0.0
		for _, t := range f.Trees {
			sum += t.predictRow(row)
		}
		out[i] = sum / float64(len(f.Trees))
	}
	return out
}

// Save serializa el bosque con gob. Escribe a un temporal y renombra para
// que un retrain nunca deje el artefacto a medias.
func (f *Forest) Save(path string) error {
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creando %s: %w", tmp, err)
	}

	if err := gob.NewEncoder(file).Encode(f); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("serializando bosque: %w", err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadForest deserializa un bosque guardado con Save.
func LoadForest(path string) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var f Forest
	if err := gob.NewDecoder(file).Decode(&f); err != nil {
		return nil, err
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("artefacto sin árboles")
	}
	return &f, nil
}

// RMSE entre predicciones y valores reales.
func RMSE(pred, actual []float64) float64 {
	if len(pred) == 0 {
		return 0
	}
	sum := 0.0
	for i := range pred {
		d := pred[i] - actual[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(pred)))
}

// roundHalf redondea al múltiplo de 0.5 más cercano, la escala discreta de
// ratings del sitio.
func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
