package gbr

import (
	"math/rand/v2"
	"slices"

	"routecast/internal/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const leafNode = -1

// node is a flattened tree node; Left and Right are indices into Tree.Nodes.
type node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a least-squares regression tree.
type Tree struct {
	Nodes []node `json:"nodes"`
}

// predict walks the tree for a single row.
func (t *Tree) predict(x []float64) float64 {
	idx := 0
	for {
		n := t.Nodes[idx]
		if n.Left == leafNode {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
}

// validate checks that predict cannot index out of range or revisit a node.
// Children always come after their parent, as the builder emits them.
func (t *Tree) validate(nFeatures int) error {
	if t == nil || len(t.Nodes) == 0 {
		return errors.Wrap(ErrMalformedTree, "no nodes")
	}

	for idx, n := range t.Nodes {
		if n.Left == leafNode {
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return errors.Wrapf(ErrMalformedTree, "node %d splits on feature %d of %d", idx, n.Feature, nFeatures)
		}
		if n.Left <= idx || n.Left >= len(t.Nodes) || n.Right <= idx || n.Right >= len(t.Nodes) {
			return errors.Wrapf(ErrMalformedTree, "node %d has children %d and %d", idx, n.Left, n.Right)
		}
	}

	return nil
}

// treeBuilder grows one tree on a residual vector.
type treeBuilder struct {
	x               [][]float64
	y               []float64
	maxDepth        int
	minSamplesSplit int
	minSamplesLeaf  int
	rng             *rand.Rand
	importances     []float64
	tree            *Tree
}

type split struct {
	feature   int
	threshold float64
	gain      float64
	left      []int
	right     []int
}

func newTreeBuilder(x [][]float64, y []float64, params Params, rng *rand.Rand) *treeBuilder {
	return &treeBuilder{
		x:               x,
		y:               y,
		maxDepth:        params.MaxDepth,
		minSamplesSplit: params.MinSamplesSplit,
		minSamplesLeaf:  params.MinSamplesLeaf,
		rng:             rng,
		importances:     make([]float64, len(x[0])),
		tree:            &Tree{},
	}
}

func (b *treeBuilder) build(samples []int) (*Tree, []float64) {
	b.grow(samples, 0)

	return b.tree, b.importances
}

// grow appends the subtree for samples and returns its root index.
func (b *treeBuilder) grow(samples []int, depth int) int {
	targets := b.targets(samples)
	idx := len(b.tree.Nodes)
	b.tree.Nodes = append(b.tree.Nodes, node{
		Left:  leafNode,
		Right: leafNode,
		Value: stat.Mean(targets, nil),
	})

	if depth >= b.maxDepth || len(samples) < b.minSamplesSplit {
		return idx
	}

	parentSSE := sse(floats.Sum(targets), sumSquares(targets), len(targets))
	if parentSSE <= 1e-12 {
		return idx
	}

	best, ok := b.bestSplit(samples, parentSSE)
	if !ok {
		return idx
	}

	b.importances[best.feature] += best.gain

	left := b.grow(best.left, depth+1)
	right := b.grow(best.right, depth+1)

	b.tree.Nodes[idx].Feature = best.feature
	b.tree.Nodes[idx].Threshold = best.threshold
	b.tree.Nodes[idx].Left = left
	b.tree.Nodes[idx].Right = right

	return idx
}

// bestSplit scans every feature in a seeded order and keeps the first split with the largest SSE reduction.
func (b *treeBuilder) bestSplit(samples []int, parentSSE float64) (split, bool) {
	best := split{gain: 0}
	found := false
	n := len(samples)
	ordered := slices.Clone(samples)

	for _, feature := range b.rng.Perm(len(b.importances)) {
		slices.SortStableFunc(ordered, func(i, j int) int {
			switch {
			case b.x[i][feature] < b.x[j][feature]:
				return -1
			case b.x[i][feature] > b.x[j][feature]:
				return 1
			default:
				return 0
			}
		})

		totalSum, totalSq := 0.0, 0.0
		for _, s := range ordered {
			totalSum += b.y[s]
			totalSq += b.y[s] * b.y[s]
		}

		leftSum, leftSq := 0.0, 0.0
		for i := 0; i < n-1; i++ {
			v := b.y[ordered[i]]
			leftSum += v
			leftSq += v * v

			current := b.x[ordered[i]][feature]
			next := b.x[ordered[i+1]][feature]
			if current == next {
				continue
			}

			nLeft, nRight := i+1, n-i-1
			if nLeft < b.minSamplesLeaf || nRight < b.minSamplesLeaf {
				continue
			}

			gain := parentSSE - sse(leftSum, leftSq, nLeft) - sse(totalSum-leftSum, totalSq-leftSq, nRight)
			if gain > best.gain+1e-12 {
				best = split{
					feature:   feature,
					threshold: (current + next) / 2,
					gain:      gain,
					left:      slices.Clone(ordered[:nLeft]),
					right:     slices.Clone(ordered[nLeft:]),
				}
				found = true
			}
		}
	}

	return best, found
}

func (b *treeBuilder) targets(samples []int) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = b.y[s]
	}

	return values
}

// sse is the sum of squared deviations from the mean.
func sse(sum, sumSq float64, n int) float64 {
	if n == 0 {
		return 0
	}

	return max(sumSq-sum*sum/float64(n), 0)
}

func sumSquares(values []float64) float64 {
	return floats.Dot(values, values)
}
