package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// PredictDepartment defines the interface for the PredictDepartment use case.
type PredictDepartment interface {
	Execute(ctx context.Context, description string) (string, error)
}

// PredictDepartmentImpl is the implementation of the PredictDepartment use case.
type PredictDepartmentImpl struct {
	predictor domain.Predictor
}

// NewPredictDepartmentImpl creates a new instance of PredictDepartmentImpl.
func NewPredictDepartmentImpl(predictor domain.Predictor) PredictDepartmentImpl {
	return PredictDepartmentImpl{
		predictor: predictor,
	}
}

// Execute predicts the department for a single free-text description using
// the currently loaded model.
func (pdi PredictDepartmentImpl) Execute(ctx context.Context, description string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	label, err := pdi.predictor.Predict(description)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	span.SetAttributes(attribute.String("predicted.label", label))
	RecordPrediction(spanCtx, label)
	return label, nil
}

// InitPredictDepartment initializes the PredictDepartment use case.
type InitPredictDepartment struct {
	Predictor domain.Predictor `resolve:""`
}

// Initialize registers the PredictDepartment use case in the dependency container.
func (ipd InitPredictDepartment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PredictDepartment](NewPredictDepartmentImpl(ipd.Predictor))
	return ctx, nil
}
