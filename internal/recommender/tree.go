package recommender

import "sort"

// TreeNode es un nodo del árbol de regresión CART. Campos exportados para
// que gob pueda serializar el modelo general.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	Value     float64 // predicción si es hoja (Left == nil)
}

func (t *TreeNode) isLeaf() bool { return t.Left == nil }

// predictRow baja por el árbol hasta una hoja.
func (t *TreeNode) predictRow(row []float64) float64 {
	node := t
	for !node.isLeaf() {
		if row[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

// buildTree entrena un CART minimizando suma de errores cuadráticos.
// idx son los índices (con repetición, por el bootstrap) sobre X/y.
func buildTree(X [][]float64, y []float64, idx []int, depth, maxDepth, minSamplesSplit int) *TreeNode {
	n := len(idx)

	sum, sumSq := 0.0, 0.0
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	mean := sum / float64(n)

	// criterio de corte: profundidad, tamaño, o target constante
	if depth >= maxDepth || n < minSamplesSplit || sumSq-sum*sum/float64(n) < 1e-12 {
		return &TreeNode{Value: mean}
	}

	bestFeature := -1
	bestThreshold := 0.0
	bestSSE := sumSq - sum*sum/float64(n)
	found := false

	numFeatures := len(X[idx[0]])
	order := make([]int, n)

	for f := 0; f < numFeatures; f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return X[order[a]][f] < X[order[b]][f]
		})

		// barrido incremental: SSE izq/der con sumas acumuladas
		leftSum, leftSq := 0.0, 0.0
		for k := 0; k < n-1; k++ {
			i := order[k]
			leftSum += y[i]
			leftSq += y[i] * y[i]

			v, next := X[i][f], X[order[k+1]][f]
			if v == next {
				continue // no se puede cortar entre valores iguales
			}

			nl := float64(k + 1)
			nr := float64(n - k - 1)
			rightSum := sum - leftSum
			rightSq := sumSq - leftSq

			sse := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if sse < bestSSE {
				bestSSE = sse
				bestFeature = f
				bestThreshold = (v + next) / 2
				found = true
			}
		}
	}

	if !found {
		return &TreeNode{Value: mean}
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if X[i][bestFeature] <= bestThreshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}
	if len(leftIdx) == 0 || len(rightIdx) == 0 {
		return &TreeNode{Value: mean}
	}

	return &TreeNode{
		Feature:   bestFeature,
		Threshold: bestThreshold,
		Left:      buildTree(X, y, leftIdx, depth+1, maxDepth, minSamplesSplit),
		Right:     buildTree(X, y, rightIdx, depth+1, maxDepth, minSamplesSplit),
	}
}
