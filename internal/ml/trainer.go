package ml

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/rmachado-dev/staffcast/internal/domain"
)

// logLossFloor clamps predicted probabilities away from zero so the log
// loss of a confidently wrong prediction stays finite.
const logLossFloor = 1e-15

// Pipeline implements domain.Trainer: it splits the examples, fits the
// feature extractor and classifier on the training partition and evaluates
// on the held-out partition.
type Pipeline struct {
	timeProvider domain.CurrentTimeProvider
}

// NewPipeline creates a new training Pipeline.
func NewPipeline(timeProvider domain.CurrentTimeProvider) Pipeline {
	return Pipeline{timeProvider: timeProvider}
}

// Train fits a model on examples and returns the evaluated artifact.
// The split and the optimizer are reproducible for a fixed cfg.Seed.
func (p Pipeline) Train(ctx context.Context, examples []domain.TrainingExample, cfg domain.TrainConfig) (domain.ModelArtifact, error) {
	testFraction := cfg.TestFraction
	if testFraction == 0 {
		testFraction = domain.DefaultTestFraction
	}
	if testFraction < 0 || testFraction >= 1 {
		return domain.ModelArtifact{}, domain.NewValidationErr("test_fraction must be in (0,1)")
	}

	labels := labelVocabulary(examples)
	if len(labels) < 2 {
		return domain.ModelArtifact{}, domain.NewInsufficientDataErr(
			fmt.Sprintf("cannot train a classifier on %d distinct label(s), need at least 2", len(labels)))
	}

	trainSet, testSet := split(examples, testFraction, cfg.Seed)
	if len(trainSet) == 0 {
		return domain.ModelArtifact{}, domain.NewInsufficientDataErr("training partition is empty after split")
	}

	labelIndex := make(map[string]int, len(labels))
	for i, l := range labels {
		labelIndex[l] = i
	}

	extractor := FitExtractor(trainSet)
	xs := make([][]float64, len(trainSet))
	ys := make([]int, len(trainSet))
	for i, ex := range trainSet {
		xs[i] = Transform(extractor, ex.Text)
		ys[i] = labelIndex[ex.Label]
	}

	weights, err := trainMaxEnt(ctx, xs, ys, len(labels), cfg.Seed)
	if err != nil {
		return domain.ModelArtifact{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.ModelArtifact{}, err
	}

	return domain.ModelArtifact{
		Version:   domain.ArtifactVersion,
		Extractor: extractor,
		Weights:   weights,
		Labels:    labels,
		TrainedAt: p.timeProvider.Now(),
		Metrics:   evaluate(extractor, weights, labelIndex, testSet),
	}, nil
}

// labelVocabulary collects the distinct labels of the full example set in
// first-seen order. The order is frozen into the artifact.
func labelVocabulary(examples []domain.TrainingExample) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, ex := range examples {
		if _, found := seen[ex.Label]; !found {
			seen[ex.Label] = struct{}{}
			labels = append(labels, ex.Label)
		}
	}
	return labels
}

// split partitions examples per label with a seeded shuffle. Every label
// keeps at least one example in the training partition, so a label with a
// single example never reaches the test partition; that label may then be
// absent from evaluation, which is accepted.
func split(examples []domain.TrainingExample, testFraction float64, seed int64) (trainSet, testSet []domain.TrainingExample) {
	byLabel := make(map[string][]int)
	var labelOrder []string
	for i, ex := range examples {
		if _, found := byLabel[ex.Label]; !found {
			labelOrder = append(labelOrder, ex.Label)
		}
		byLabel[ex.Label] = append(byLabel[ex.Label], i)
	}

	rng := rand.New(rand.NewSource(seed))
	for _, label := range labelOrder {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		testCount := int(math.Floor(float64(len(indices)) * testFraction))
		if testCount > len(indices)-1 {
			testCount = len(indices) - 1
		}

		for k, idx := range indices {
			if k < testCount {
				testSet = append(testSet, examples[idx])
			} else {
				trainSet = append(trainSet, examples[idx])
			}
		}
	}
	return trainSet, testSet
}

// evaluate computes macro accuracy, micro accuracy and log loss on the
// held-out partition. An empty test partition yields zero metrics.
func evaluate(extractor domain.ExtractorState, weights [][]float64, labelIndex map[string]int, testSet []domain.TrainingExample) domain.Metrics {
	if len(testSet) == 0 {
		return domain.Metrics{}
	}

	classTotal := make([]int, len(labelIndex))
	classCorrect := make([]int, len(labelIndex))
	correct := 0
	var logLossSum float64

	for _, ex := range testSet {
		trueClass := labelIndex[ex.Label]
		probs := Probabilities(weights, Transform(extractor, ex.Text))

		predicted := argmax(probs)
		classTotal[trueClass]++
		if predicted == trueClass {
			classCorrect[trueClass]++
			correct++
		}

		logLossSum += -math.Log(math.Max(probs[trueClass], logLossFloor))
	}

	var macroSum float64
	classesInTest := 0
	for c := range classTotal {
		if classTotal[c] == 0 {
			continue
		}
		classesInTest++
		macroSum += float64(classCorrect[c]) / float64(classTotal[c])
	}

	return domain.Metrics{
		MacroAccuracy: macroSum / float64(classesInTest),
		MicroAccuracy: float64(correct) / float64(len(testSet)),
		LogLoss:       logLossSum / float64(len(testSet)),
	}
}

// argmax returns the index of the largest probability; ties resolve to the
// lowest index so predictions stay deterministic.
func argmax(probs []float64) int {
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return best
}
