package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("usecases")
	// PredictionsServed counts single-description predictions by outcome.
	PredictionsServed metric.Int64Counter
	// TrainingRuns counts finished training runs by terminal state.
	TrainingRuns metric.Int64Counter
)

func init() {
	var err error
	PredictionsServed, err = meter.Int64Counter(
		"predictions_total",
		metric.WithDescription("Total department predictions served"),
	)
	if err != nil {
		panic(err)
	}

	TrainingRuns, err = meter.Int64Counter(
		"training_runs_total",
		metric.WithDescription("Total finished training runs"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordPrediction records one served prediction and its predicted label.
func RecordPrediction(ctx context.Context, label string) {
	PredictionsServed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("label", label),
	))
}

// RecordTrainingRun records one finished training run and its terminal state.
func RecordTrainingRun(ctx context.Context, state string) {
	TrainingRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("state", state),
	))
}
