// Package modelstore persists model artifacts as gob-encoded files.
package modelstore

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Store implements domain.ModelStore on a single file path. Saves go
// through a temporary file in the same directory followed by a rename, so a
// crash mid-write never leaves a corrupt artifact at the canonical path.
type Store struct {
	path string
}

// NewStore creates a Store for the given artifact path.
func NewStore(path string) Store {
	return Store{path: path}
}

// Save atomically writes the artifact, replacing any previous one.
func (s Store) Save(ctx context.Context, artifact domain.ModelArtifact) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("artifact.path", s.path),
	))
	defer span.End()

	if err := artifact.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".artifact-*")
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("create temporary artifact file: %w", err)
	}
	tmpName := tmp.Name()

	if err := gob.NewEncoder(tmp).Encode(artifact); err != nil {
		tmp.Close()          //nolint:errcheck
		os.Remove(tmpName)   //nolint:errcheck
		telemetry.RecordErrorAndStatus(span, err)
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()        //nolint:errcheck
		os.Remove(tmpName) //nolint:errcheck
		telemetry.RecordErrorAndStatus(span, err)
		return fmt.Errorf("sync artifact: %w", err)
	}
	if err := tmp.Close(); telemetry.RecordErrorAndStatus(span, err) {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("close artifact: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		telemetry.RecordErrorAndStatus(span, err)
		return fmt.Errorf("replace artifact: %w", err)
	}

	return nil
}

// Load reads the artifact back. A missing file maps to NotFoundErr and an
// undecodable or incomplete payload to CorruptArtifactErr.
func (s Store) Load(ctx context.Context) (domain.ModelArtifact, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("artifact.path", s.path),
	))
	defer span.End()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			err = domain.NewNotFoundErr(fmt.Sprintf("model artifact not found: %s", s.path))
		}
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelArtifact{}, err
	}
	defer f.Close() //nolint:errcheck

	var artifact domain.ModelArtifact
	if err := gob.NewDecoder(f).Decode(&artifact); err != nil {
		err = domain.NewCorruptArtifactErr(fmt.Sprintf("model artifact cannot be decoded: %v", err))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelArtifact{}, err
	}
	if err := artifact.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelArtifact{}, err
	}

	return artifact, nil
}

// InitModelStore is a Symbiont initializer for the model Store.
type InitModelStore struct {
	Path string `config:"MODEL_PATH" default:"department_model.gob"`
}

// Initialize registers the Store in the dependency container.
func (im InitModelStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ModelStore](NewStore(im.Path))
	return ctx, nil
}
