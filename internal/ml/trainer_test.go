package ml

import (
	"context"
	"testing"
	"time"

	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.now
}

func newTestPipeline() Pipeline {
	return NewPipeline(fixedTimeProvider{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)})
}

func departmentExamples() []domain.TrainingExample {
	return []domain.TrainingExample{
		{Text: "approve invoice", Label: "Finance"},
		{Text: "approve the quarterly invoice", Label: "Finance"},
		{Text: "reconcile the budget accounts", Label: "Finance"},
		{Text: "process invoice payments", Label: "Finance"},
		{Text: "fix server", Label: "IT"},
		{Text: "fix the broken server", Label: "IT"},
		{Text: "debug the network outage", Label: "IT"},
		{Text: "patch the database server", Label: "IT"},
		{Text: "interview new candidates", Label: "HR"},
		{Text: "onboard new hires", Label: "HR"},
		{Text: "review employee benefits", Label: "HR"},
		{Text: "schedule candidate interviews", Label: "HR"},
	}
}

func TestPipeline_Train(t *testing.T) {
	pipeline := newTestPipeline()

	artifact, err := pipeline.Train(context.Background(), departmentExamples(), domain.TrainConfig{Seed: 42})
	require.NoError(t, err)

	assert.NoError(t, artifact.Validate())
	assert.ElementsMatch(t, []string{"Finance", "IT", "HR"}, artifact.Labels)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), artifact.TrainedAt)

	assert.GreaterOrEqual(t, artifact.Metrics.MacroAccuracy, 0.0)
	assert.LessOrEqual(t, artifact.Metrics.MacroAccuracy, 1.0)
	assert.GreaterOrEqual(t, artifact.Metrics.MicroAccuracy, 0.0)
	assert.LessOrEqual(t, artifact.Metrics.MicroAccuracy, 1.0)
	assert.GreaterOrEqual(t, artifact.Metrics.LogLoss, 0.0)
}

func TestPipeline_Train_Deterministic(t *testing.T) {
	pipeline := newTestPipeline()
	cfg := domain.TrainConfig{TestFraction: 0.25, Seed: 7}

	first, err := pipeline.Train(context.Background(), departmentExamples(), cfg)
	require.NoError(t, err)
	second, err := pipeline.Train(context.Background(), departmentExamples(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Extractor, second.Extractor)
	assert.Equal(t, first.Weights, second.Weights)
	assert.Equal(t, first.Metrics, second.Metrics)
}

func TestPipeline_Train_InsufficientData(t *testing.T) {
	pipeline := newTestPipeline()

	tests := map[string]struct {
		examples []domain.TrainingExample
	}{
		"no-examples": {
			examples: nil,
		},
		"single-label": {
			examples: []domain.TrainingExample{
				{Text: "approve invoice", Label: "Finance"},
				{Text: "reconcile accounts", Label: "Finance"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := pipeline.Train(context.Background(), tt.examples, domain.TrainConfig{Seed: 1})
			assert.Error(t, err)
			assert.IsType(t, &domain.InsufficientDataErr{}, err)
		})
	}
}

func TestPipeline_Train_InvalidTestFraction(t *testing.T) {
	pipeline := newTestPipeline()

	for _, fraction := range []float64{-0.1, 1.0, 1.5} {
		_, err := pipeline.Train(context.Background(), departmentExamples(), domain.TrainConfig{TestFraction: fraction, Seed: 1})
		assert.IsType(t, &domain.ValidationErr{}, err)
	}
}

func TestPipeline_Train_Cancellation(t *testing.T) {
	pipeline := newTestPipeline()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Train(ctx, departmentExamples(), domain.TrainConfig{Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_Train_PredictsWithinVocabulary(t *testing.T) {
	// Scenario from the contract: two labels with two examples each must
	// train, and a novel description must map to one of the known labels.
	examples := []domain.TrainingExample{
		{Text: "approve invoice", Label: "Finance"},
		{Text: "approve invoice", Label: "Finance"},
		{Text: "fix server", Label: "IT"},
		{Text: "fix server", Label: "IT"},
	}

	pipeline := newTestPipeline()
	artifact, err := pipeline.Train(context.Background(), examples, domain.TrainConfig{Seed: 3})
	require.NoError(t, err)

	predictor := NewPredictor()
	predictor.Swap(&artifact)

	label, err := predictor.Predict("pay the invoice")
	require.NoError(t, err)
	assert.Contains(t, []string{"Finance", "IT"}, label)
}

func TestSplit(t *testing.T) {
	examples := append(departmentExamples(), domain.TrainingExample{Text: "negotiate vendor contracts", Label: "Operations"})

	trainSet, testSet := split(examples, 0.25, 99)
	assert.Equal(t, len(examples), len(trainSet)+len(testSet))

	// Every label keeps at least one example in the training partition;
	// the singleton Operations label must not land in test.
	trainLabels := map[string]int{}
	for _, ex := range trainSet {
		trainLabels[ex.Label]++
	}
	for _, label := range []string{"Finance", "IT", "HR", "Operations"} {
		assert.GreaterOrEqual(t, trainLabels[label], 1, "label %s missing from training partition", label)
	}
	for _, ex := range testSet {
		assert.NotEqual(t, "Operations", ex.Label)
	}
}

func TestSplit_Reproducible(t *testing.T) {
	examples := departmentExamples()

	train1, test1 := split(examples, 0.25, 5)
	train2, test2 := split(examples, 0.25, 5)

	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)
}

func TestEvaluate_PerfectClassifier(t *testing.T) {
	pipeline := newTestPipeline()

	// Train and evaluate on a linearly separable corpus with a low test
	// fraction; the classifier should separate the duplicated phrasing.
	examples := []domain.TrainingExample{
		{Text: "approve invoice", Label: "Finance"},
		{Text: "approve invoice", Label: "Finance"},
		{Text: "approve invoice", Label: "Finance"},
		{Text: "approve invoice", Label: "Finance"},
		{Text: "fix server", Label: "IT"},
		{Text: "fix server", Label: "IT"},
		{Text: "fix server", Label: "IT"},
		{Text: "fix server", Label: "IT"},
	}

	artifact, err := pipeline.Train(context.Background(), examples, domain.TrainConfig{TestFraction: 0.25, Seed: 11})
	require.NoError(t, err)

	assert.Equal(t, 1.0, artifact.Metrics.MacroAccuracy)
	assert.Equal(t, 1.0, artifact.Metrics.MicroAccuracy)
	assert.Less(t, artifact.Metrics.LogLoss, 1.0)
}
