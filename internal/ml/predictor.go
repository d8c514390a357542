package ml

import (
	"sync/atomic"

	"github.com/rmachado-dev/staffcast/internal/domain"
)

// Predictor answers single-description predictions against the most
// recently swapped-in artifact. The artifact is held behind an atomic
// pointer: Swap is a single store, so in-flight Predict calls observe
// either the old or the new artifact in full.
type Predictor struct {
	artifact atomic.Pointer[domain.ModelArtifact]
}

// NewPredictor creates a Predictor with no artifact loaded.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Swap atomically replaces the loaded artifact.
func (p *Predictor) Swap(artifact *domain.ModelArtifact) {
	p.artifact.Store(artifact)
}

// Loaded reports whether an artifact is currently loaded.
func (p *Predictor) Loaded() bool {
	return p.artifact.Load() != nil
}

// Predict returns the predicted label for text. It is a pure function of
// the loaded artifact and the text; the returned label always belongs to
// the artifact's frozen label vocabulary.
func (p *Predictor) Predict(text string) (string, error) {
	artifact := p.artifact.Load()
	if artifact == nil {
		return "", domain.NewNoModelLoadedErr("no model artifact is loaded, train or load a model first")
	}

	probs := Probabilities(artifact.Weights, Transform(artifact.Extractor, text))
	return artifact.Labels[argmax(probs)], nil
}
