package ml

import (
	"context"
	"errors"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
)

// InitTrainer is a Symbiont initializer for the training Pipeline.
type InitTrainer struct {
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the Pipeline in the dependency container.
func (it InitTrainer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.Trainer](NewPipeline(it.TimeService))
	return ctx, nil
}

// InitPredictor initializes the Predictor and warms it up with the
// persisted artifact when one exists. The original flow only loaded a model
// right after training; loading at startup keeps predictions available
// across restarts. A missing or corrupt artifact is logged and the service
// starts without a model.
type InitPredictor struct {
	Logger     *log.Logger       `resolve:""`
	ModelStore domain.ModelStore `resolve:""`
}

// Initialize registers the Predictor in the dependency container.
func (ip InitPredictor) Initialize(ctx context.Context) (context.Context, error) {
	predictor := NewPredictor()

	artifact, err := ip.ModelStore.Load(ctx)
	switch {
	case err == nil:
		predictor.Swap(&artifact)
		ip.Logger.Printf("InitPredictor: loaded model artifact trained at %s", artifact.TrainedAt.Format("2006-01-02 15:04:05"))
	case errors.As(err, new(*domain.NotFoundErr)):
		ip.Logger.Println("InitPredictor: no persisted model artifact, starting without a model")
	default:
		ip.Logger.Printf("InitPredictor: could not load persisted model artifact: %v", err)
	}

	depend.Register[domain.Predictor](predictor)
	return ctx, nil
}
