package modelstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArtifact() domain.ModelArtifact {
	return domain.ModelArtifact{
		Version: domain.ArtifactVersion,
		Extractor: domain.ExtractorState{
			Vocabulary: map[string]int{"approve": 0, "invoice": 1, "fix": 2, "server": 3},
		},
		Weights: [][]float64{
			{0.5, 0.5, -0.5, -0.5, 0.1},
			{-0.5, -0.5, 0.5, 0.5, -0.1},
		},
		Labels:    []string{"Finance", "IT"},
		TrainedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Metrics:   domain.Metrics{MacroAccuracy: 1, MicroAccuracy: 1, LogLoss: 0.05},
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "department_model.gob")
	store := NewStore(path)
	artifact := sampleArtifact()

	require.NoError(t, store.Save(context.Background(), artifact))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, artifact, loaded)
}

func TestStore_Save_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "department_model.gob")
	store := NewStore(path)

	first := sampleArtifact()
	require.NoError(t, store.Save(context.Background(), first))

	second := sampleArtifact()
	second.TrainedAt = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(context.Background(), second))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.TrainedAt, loaded.TrainedAt)
}

func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "department_model.gob"))

	require.NoError(t, store.Save(context.Background(), sampleArtifact()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "department_model.gob", entries[0].Name())
}

func TestStore_Save_RejectsIncompleteArtifact(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "department_model.gob"))

	artifact := sampleArtifact()
	artifact.Labels = nil

	err := store.Save(context.Background(), artifact)
	assert.IsType(t, &domain.CorruptArtifactErr{}, err)

	_, err = store.Load(context.Background())
	assert.IsType(t, &domain.NotFoundErr{}, err)
}

func TestStore_Load_Missing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "department_model.gob"))

	_, err := store.Load(context.Background())
	assert.IsType(t, &domain.NotFoundErr{}, err)
}

func TestStore_Load_Corrupt(t *testing.T) {
	tests := map[string]struct {
		content []byte
	}{
		"garbage-bytes": {content: []byte("definitely not gob")},
		"empty-file":    {content: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "department_model.gob")
			require.NoError(t, os.WriteFile(path, tt.content, 0o644))

			_, err := NewStore(path).Load(context.Background())
			assert.IsType(t, &domain.CorruptArtifactErr{}, err)
		})
	}
}
