package usecases

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TrainModel defines the interface for the TrainModel use case. At most one
// training run is in flight at any time; a completed run stays observable
// through Status until the next run starts.
type TrainModel interface {
	// Start launches a background training run and returns its initial status.
	Start(ctx context.Context) (domain.TrainingRun, error)
	// Cancel stops the in-flight training run.
	Cancel(ctx context.Context) (domain.TrainingRun, error)
	// Status returns the status of the most recent training run.
	Status(ctx context.Context) domain.TrainingRun
}

// TrainModelImpl is the implementation of the TrainModel use case.
type TrainModelImpl struct {
	loader       domain.DatasetLoader
	trainer      domain.Trainer
	store        domain.ModelStore
	predictor    domain.Predictor
	notifier     domain.TrainingNotifier
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	datasetPath  string
	trainCfg     domain.TrainConfig
	createUUID   func() uuid.UUID

	mu      sync.Mutex
	current domain.TrainingRun
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewTrainModelImpl creates a new instance of TrainModelImpl.
func NewTrainModelImpl(
	loader domain.DatasetLoader,
	trainer domain.Trainer,
	store domain.ModelStore,
	predictor domain.Predictor,
	notifier domain.TrainingNotifier,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	datasetPath string,
	trainCfg domain.TrainConfig,
) *TrainModelImpl {
	return &TrainModelImpl{
		loader:       loader,
		trainer:      trainer,
		store:        store,
		predictor:    predictor,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		datasetPath:  datasetPath,
		trainCfg:     trainCfg,
		createUUID:   uuid.New,
		current:      domain.TrainingRun{State: domain.TrainingState_IDLE},
	}
}

// Start launches a background training run. It fails with a
// TrainingInProgressErr while a previous run is still in flight.
func (tmi *TrainModelImpl) Start(ctx context.Context) (domain.TrainingRun, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	tmi.mu.Lock()
	defer tmi.mu.Unlock()

	if tmi.current.State == domain.TrainingState_RUNNING {
		err := domain.NewTrainingInProgressErr("a training run is already in progress")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TrainingRun{}, err
	}

	run := domain.TrainingRun{
		ID:        tmi.createUUID(),
		State:     domain.TrainingState_RUNNING,
		StartedAt: tmi.timeProvider.Now(),
	}

	// The run outlives the request; it is tied to its own cancelable
	// context, not to the caller's.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	tmi.current = run
	tmi.cancel = cancel
	tmi.done = make(chan struct{})

	span.SetAttributes(attribute.String("training.run_id", run.ID.String()))
	go tmi.run(runCtx, run.ID)

	return run, nil
}

// Cancel stops the in-flight training run and returns its status. Without a
// run in flight it fails with a ConflictErr.
func (tmi *TrainModelImpl) Cancel(ctx context.Context) (domain.TrainingRun, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	tmi.mu.Lock()
	if tmi.current.State != domain.TrainingState_RUNNING {
		tmi.mu.Unlock()
		err := domain.NewConflictErr("no training run is in progress")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TrainingRun{}, err
	}
	cancel := tmi.cancel
	done := tmi.done
	tmi.mu.Unlock()

	cancel()
	<-done

	tmi.mu.Lock()
	defer tmi.mu.Unlock()
	return tmi.current, nil
}

// Status returns the status of the most recent training run.
func (tmi *TrainModelImpl) Status(ctx context.Context) domain.TrainingRun {
	tmi.mu.Lock()
	defer tmi.mu.Unlock()
	return tmi.current
}

func (tmi *TrainModelImpl) run(ctx context.Context, runID uuid.UUID) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("training.run_id", runID.String()),
	))
	defer span.End()

	var artifact domain.ModelArtifact
	examples, err := tmi.loader.Load(spanCtx, tmi.datasetPath)
	if err == nil {
		artifact, err = tmi.trainer.Train(spanCtx, examples, tmi.trainCfg)
	}
	if err == nil {
		err = tmi.store.Save(spanCtx, artifact)
	}
	telemetry.RecordErrorAndStatus(span, err)

	tmi.mu.Lock()
	tmi.current.FinishedAt = tmi.timeProvider.Now()
	switch {
	case err == nil:
		tmi.current.State = domain.TrainingState_COMPLETED
		metrics := artifact.Metrics
		tmi.current.Metrics = &metrics
		tmi.predictor.Swap(&artifact)
	case errors.Is(err, context.Canceled):
		tmi.current.State = domain.TrainingState_CANCELLED
		tmi.current.Error = err.Error()
	default:
		tmi.current.State = domain.TrainingState_FAILED
		tmi.current.Error = err.Error()
	}
	run := tmi.current
	done := tmi.done
	tmi.mu.Unlock()

	if err != nil {
		tmi.logger.Printf("training run %s finished in state %s: %v", runID, run.State, err)
	} else {
		tmi.logger.Printf(
			"training run %s completed: macro=%.4f micro=%.4f logloss=%.4f",
			runID, run.Metrics.MacroAccuracy, run.Metrics.MicroAccuracy, run.Metrics.LogLoss,
		)
	}

	RecordTrainingRun(spanCtx, string(run.State))
	tmi.notifier.TrainingCompleted(spanCtx, run)
	close(done)
}

// InitTrainModel initializes the TrainModel use case and registers it in the dependency container.
type InitTrainModel struct {
	Loader       domain.DatasetLoader       `resolve:""`
	Trainer      domain.Trainer             `resolve:""`
	Store        domain.ModelStore          `resolve:""`
	Predictor    domain.Predictor           `resolve:""`
	Notifier     domain.TrainingNotifier    `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	DatasetPath  string                     `config:"DATASET_PATH" default:"dataset.tsv"`
	TestFraction string                     `config:"TEST_FRACTION" default:"0.2"`
	TrainSeed    int                        `config:"TRAIN_SEED" default:"42"`
}

// Initialize initializes the TrainModelImpl use case and registers it in the dependency container.
func (itm InitTrainModel) Initialize(ctx context.Context) (context.Context, error) {
	fraction, err := strconv.ParseFloat(itm.TestFraction, 64)
	if err != nil {
		return ctx, err
	}

	depend.Register[TrainModel](NewTrainModelImpl(
		itm.Loader,
		itm.Trainer,
		itm.Store,
		itm.Predictor,
		itm.Notifier,
		itm.TimeProvider,
		itm.Logger,
		itm.DatasetPath,
		domain.TrainConfig{TestFraction: fraction, Seed: int64(itm.TrainSeed)},
	))
	return ctx, nil
}
