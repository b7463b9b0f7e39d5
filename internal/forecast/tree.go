package forecast

import (
	"math"
	"sort"
)

// regressionTree is a CART regression tree: exhaustive SSE split search,
// mean-value leaves. Fitting is fully deterministic; ties resolve to the
// first feature and lowest threshold.
type regressionTree struct {
	maxDepth int
	minLeaf  int
	root     *treeNode
}

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
	leaf      bool
}

func newRegressionTree(maxDepth, minLeaf int) *regressionTree {
	if minLeaf < 1 {
		minLeaf = 1
	}
	return &regressionTree{maxDepth: maxDepth, minLeaf: minLeaf}
}

// fit trains on the rows of X selected by idx. X is never copied; callers
// pass index slices to express bootstrap samples.
func (t *regressionTree) fit(X [][]float64, y []float64, idx []int) {
	t.root = t.build(X, y, idx, 0)
}

func (t *regressionTree) predict(x []float64) float64 {
	node := t.root
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

func (t *regressionTree) build(X [][]float64, y []float64, idx []int, depth int) *treeNode {
	mean := meanAt(y, idx)

	if depth >= t.maxDepth || len(idx) < 2*t.minLeaf || constantAt(y, idx) {
		return &treeNode{leaf: true, value: mean}
	}

	feature, threshold, ok := t.bestSplit(X, y, idx)
	if !ok {
		return &treeNode{leaf: true, value: mean}
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      t.build(X, y, leftIdx, depth+1),
		right:     t.build(X, y, rightIdx, depth+1),
	}
}

// bestSplit scans every feature and every distinct-value boundary for the
// split minimizing total SSE, using running sums over a value-sorted order.
func (t *regressionTree) bestSplit(X [][]float64, y []float64, idx []int) (int, float64, bool) {
	numFeatures := len(X[idx[0]])
	n := len(idx)

	var totalSum, totalSq float64
	for _, i := range idx {
		totalSum += y[i]
		totalSq += y[i] * y[i]
	}

	bestSSE := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	order := make([]int, n)
	for f := 0; f < numFeatures; f++ {
		copy(order, idx)
		sort.SliceStable(order, func(a, b int) bool {
			return X[order[a]][f] < X[order[b]][f]
		})

		var leftSum, leftSq float64
		for pos := 0; pos < n-1; pos++ {
			i := order[pos]
			leftSum += y[i]
			leftSq += y[i] * y[i]

			// No boundary between equal feature values.
			if X[i][f] == X[order[pos+1]][f] {
				continue
			}

			leftN := pos + 1
			rightN := n - leftN
			if leftN < t.minLeaf || rightN < t.minLeaf {
				continue
			}

			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/float64(leftN)) +
				(rightSq - rightSum*rightSum/float64(rightN))

			if sse < bestSSE {
				bestSSE = sse
				bestFeature = f
				bestThreshold = X[i][f]
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func meanAt(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}

func constantAt(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}
