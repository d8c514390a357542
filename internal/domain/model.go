package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TrainingExample is one labeled row of the training dataset. Examples with
// empty text are kept so the pipeline's behavior on empty input stays
// observable; the label must always be present.
type TrainingExample struct {
	Text  string
	Label string
}

// Metrics holds the evaluation results of one training run. They are
// computed once, attached to the artifact and never recomputed implicitly.
type Metrics struct {
	// MacroAccuracy is the mean of per-class accuracies, each class
	// weighted equally regardless of support.
	MacroAccuracy float64
	// MicroAccuracy is the overall fraction of correctly predicted examples.
	MicroAccuracy float64
	// LogLoss is the mean negative log-probability assigned to the true label.
	LogLoss float64
}

// ExtractorState is the frozen vocabulary of the feature extractor, built
// from the training corpus at fit time.
type ExtractorState struct {
	// Vocabulary maps a term to its feature index. The feature vector
	// length equals len(Vocabulary).
	Vocabulary map[string]int
}

// ModelArtifact is the serialized, loadable result of a completed training
// run. It is immutable once written; the predictor only holds a read-only
// reference after load.
type ModelArtifact struct {
	Version   int
	Extractor ExtractorState
	// Weights holds one row per class, each row len(Vocabulary)+1 wide with
	// the bias term last.
	Weights [][]float64
	// Labels is the frozen label vocabulary; the row index in Weights is
	// the label index.
	Labels    []string
	TrainedAt time.Time
	Metrics   Metrics
}

// ArtifactVersion is the current artifact schema version.
const ArtifactVersion = 1

// Validate checks that all required fields of a deserialized artifact are
// present and mutually consistent.
func (a ModelArtifact) Validate() error {
	if a.Version != ArtifactVersion {
		return NewCorruptArtifactErr("artifact has unsupported schema version")
	}
	if len(a.Labels) == 0 {
		return NewCorruptArtifactErr("artifact is missing the label vocabulary")
	}
	if a.Extractor.Vocabulary == nil {
		return NewCorruptArtifactErr("artifact is missing the extractor state")
	}
	if len(a.Weights) != len(a.Labels) {
		return NewCorruptArtifactErr("artifact weights do not match the label vocabulary")
	}
	want := len(a.Extractor.Vocabulary) + 1
	for _, row := range a.Weights {
		if len(row) != want {
			return NewCorruptArtifactErr("artifact weights do not match the extractor vocabulary")
		}
	}
	if a.TrainedAt.IsZero() {
		return NewCorruptArtifactErr("artifact is missing the training timestamp")
	}
	return nil
}

// TrainConfig controls the train/test protocol of one run.
type TrainConfig struct {
	// TestFraction is the share of examples held out for evaluation,
	// in (0,1). Defaults to 0.2 when zero.
	TestFraction float64
	// Seed makes the split and the optimizer reproducible.
	Seed int64
}

// DefaultTestFraction is used when TrainConfig.TestFraction is unset.
const DefaultTestFraction = 0.2

// DatasetLoader parses labeled training examples from a delimited source.
type DatasetLoader interface {
	// Load reads the whole dataset at path. A single malformed row fails
	// the entire load; a header-only or empty source is an error as well.
	Load(ctx context.Context, path string) ([]TrainingExample, error)
}

// Trainer fits a multiclass classifier on extracted features and evaluates
// it on a held-out partition.
type Trainer interface {
	Train(ctx context.Context, examples []TrainingExample, cfg TrainConfig) (ModelArtifact, error)
}

// ModelStore persists model artifacts.
type ModelStore interface {
	// Save atomically writes the artifact to the configured path,
	// replacing any previous artifact.
	Save(ctx context.Context, artifact ModelArtifact) error
	// Load reads the artifact back from the configured path.
	Load(ctx context.Context) (ModelArtifact, error)
}

// Predictor answers single-description predictions against the currently
// loaded artifact.
type Predictor interface {
	// Predict returns the predicted label for text. It is a pure function
	// of the loaded artifact and the text.
	Predict(text string) (string, error)
	// Swap atomically replaces the loaded artifact. In-flight Predict
	// calls observe either the old or the new artifact in full.
	Swap(artifact *ModelArtifact)
	// Loaded reports whether an artifact is currently loaded.
	Loaded() bool
}

// TrainingNotifier is told about finished training runs. Implementations
// must tolerate being called from a background goroutine.
type TrainingNotifier interface {
	TrainingCompleted(ctx context.Context, run TrainingRun)
}

// TrainingState describes the lifecycle phase of a training run.
type TrainingState string

const (
	TrainingState_IDLE      TrainingState = "IDLE"
	TrainingState_RUNNING   TrainingState = "RUNNING"
	TrainingState_COMPLETED TrainingState = "COMPLETED"
	TrainingState_FAILED    TrainingState = "FAILED"
	TrainingState_CANCELLED TrainingState = "CANCELLED"
)

// TrainingRun is the observable status of the most recent training run.
type TrainingRun struct {
	ID         uuid.UUID
	State      TrainingState
	StartedAt  time.Time
	FinishedAt time.Time
	Metrics    *Metrics
	Error      string
}
