package ml

import (
	"context"
	"math"
	"math/rand"
)

// Optimizer settings for the maximum-entropy trainer. The model is a
// multinomial logistic regression fit by seeded mini-batch SGD, so its
// softmax outputs are normalized class probabilities and log loss is always
// computable.
const (
	maxEntEpochs       = 250
	maxEntLearningRate = 0.5
	maxEntL2           = 1e-4
)

// scores computes the raw class scores w·x + b for every class. Each weight
// row carries the bias as its last element.
func scores(weights [][]float64, x []float64) []float64 {
	out := make([]float64, len(weights))
	for c, row := range weights {
		s := row[len(row)-1]
		for i, v := range x {
			if v != 0 {
				s += row[i] * v
			}
		}
		out[c] = s
	}
	return out
}

// softmax converts raw scores into a probability distribution, shifting by
// the max score for numerical stability.
func softmax(z []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range z {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(z))
	var sum float64
	for c, s := range z {
		probs[c] = math.Exp(s - maxScore)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}

// Probabilities returns the softmax class distribution for a feature vector.
func Probabilities(weights [][]float64, x []float64) []float64 {
	return softmax(scores(weights, x))
}

// trainMaxEnt fits one weight row per class on the given vectors and label
// indices. The example order is reshuffled every epoch with the seeded rng,
// so two runs with the same seed and data produce identical weights.
// Cancellation is checked between epochs.
func trainMaxEnt(ctx context.Context, xs [][]float64, ys []int, numClasses int, seed int64) ([][]float64, error) {
	dim := 0
	if len(xs) > 0 {
		dim = len(xs[0])
	}

	weights := make([][]float64, numClasses)
	for c := range weights {
		weights[c] = make([]float64, dim+1)
	}

	rng := rand.New(rand.NewSource(seed))
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < maxEntEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		lr := maxEntLearningRate / (1 + 0.01*float64(epoch))

		for _, idx := range order {
			x := xs[idx]
			probs := softmax(scores(weights, x))

			for c := range weights {
				target := 0.0
				if c == ys[idx] {
					target = 1.0
				}
				grad := probs[c] - target

				row := weights[c]
				for i, v := range x {
					if v != 0 {
						row[i] -= lr * (grad*v + maxEntL2*row[i])
					}
				}
				row[dim] -= lr * grad
			}
		}
	}

	return weights, nil
}
