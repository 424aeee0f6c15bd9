package recommender

import (
	"fmt"
	"math"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// PreferenceVector resume el gusto de un usuario como el vector de
// coeficientes de una regresión ridge sobre sus features estandarizadas,
// normalizado a módulo 1. Dos usuarios con vectores parecidos puntúan
// parecido a las mismas señales (género, año, popularidad...).
func PreferenceVector(rows []models.ProcessedUserRow) ([]float64, error) {
	if len(rows) < MinTrainingRows {
		username := ""
		if len(rows) > 0 {
			username = rows[0].Username
		}
		return nil, &UserProfileError{Username: username, Reason: "no tiene suficientes películas puntuadas"}
	}

	X, y, err := PrepareTrainingMatrix(rows)
	if err != nil {
		return nil, err
	}

	standardize(X)

	// regularización más fuerte para perfiles chicos
	var alpha float64
	switch n := len(y); {
	case n < 20:
		alpha = 10.0
	case n < 100:
		alpha = 3.0
	default:
		alpha = 1.0
	}

	w, err := ridge(X, y, alpha)
	if err != nil {
		return nil, err
	}

	norm := 0.0
	for _, v := range w {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil, fmt.Errorf("vector de preferencias nulo")
	}
	for i := range w {
		w[i] /= norm
	}
	return w, nil
}

// CompatibilityScore escala la similitud coseno de dos vectores de
// preferencias de [-1, 1] a un entero 0-100.
func CompatibilityScore(v1, v2 []float64) int {
	var dot, n1, n2 float64
	for i := range v1 {
		dot += v1[i] * v2[i]
		n1 += v1[i] * v1[i]
		n2 += v2[i] * v2[i]
	}
	if n1 == 0 || n2 == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(n1) * math.Sqrt(n2))
	return int(((cos + 1) / 2) * 100)
}

// standardize deja cada columna con media 0 y desvío 1, en el lugar.
// Columnas constantes quedan en 0.
func standardize(X [][]float64) {
	if len(X) == 0 {
		return
	}
	n := float64(len(X))
	cols := len(X[0])

	for c := 0; c < cols; c++ {
		mean := 0.0
		for i := range X {
			mean += X[i][c]
		}
		mean /= n

		variance := 0.0
		for i := range X {
			d := X[i][c] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / n)

		for i := range X {
			if std == 0 {
				X[i][c] = 0
			} else {
				X[i][c] = (X[i][c] - mean) / std
			}
		}
	}
}

// ridge resuelve (XᵀX + αI) w = Xᵀ(y - ȳ) por eliminación gaussiana.
// Con X estandarizada el intercepto es ȳ y no afecta a los coeficientes.
func ridge(X [][]float64, y []float64, alpha float64) ([]float64, error) {
	n := len(X)
	cols := len(X[0])

	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	// A = XᵀX + αI, b = Xᵀ(y - ȳ)
	A := make([][]float64, cols)
	b := make([]float64, cols)
	for i := range A {
		A[i] = make([]float64, cols)
	}
	for r := 0; r < n; r++ {
		yc := y[r] - yMean
		for i := 0; i < cols; i++ {
			b[i] += X[r][i] * yc
			for j := i; j < cols; j++ {
				A[i][j] += X[r][i] * X[r][j]
			}
		}
	}
	for i := 0; i < cols; i++ {
		A[i][i] += alpha
		for j := 0; j < i; j++ {
			A[i][j] = A[j][i]
		}
	}

	// eliminación con pivoteo parcial
	for col := 0; col < cols; col++ {
		pivot := col
		for r := col + 1; r < cols; r++ {
			if math.Abs(A[r][col]) > math.Abs(A[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(A[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("sistema ridge singular en columna %d", col)
		}
		A[col], A[pivot] = A[pivot], A[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < cols; r++ {
			factor := A[r][col] / A[col][col]
			for c := col; c < cols; c++ {
				A[r][c] -= factor * A[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	w := make([]float64, cols)
	for i := cols - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < cols; j++ {
			sum -= A[i][j] * w[j]
		}
		w[i] = sum / A[i][i]
	}
	return w, nil
}
