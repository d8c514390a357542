package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "department_data.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	tests := map[string]struct {
		content      string
		wantExamples []domain.TrainingExample
		wantErrType  error
		wantErrMsg   string
	}{
		"valid-dataset": {
			content: "text\tlabel\napprove invoice\tFinance\nfix server\tIT\n",
			wantExamples: []domain.TrainingExample{
				{Text: "approve invoice", Label: "Finance"},
				{Text: "fix server", Label: "IT"},
			},
		},
		"empty-text-kept": {
			content: "text\tlabel\n\tFinance\n",
			wantExamples: []domain.TrainingExample{
				{Text: "", Label: "Finance"},
			},
		},
		"header-only": {
			content:     "text\tlabel\n",
			wantErrType: &domain.DataErr{},
			wantErrMsg:  "dataset is empty: no example rows after the header",
		},
		"fully-empty": {
			content:     "",
			wantErrType: &domain.DataErr{},
			wantErrMsg:  "dataset is empty: no example rows after the header",
		},
		"malformed-row-too-few-fields": {
			content:     "text\tlabel\napprove invoice\tFinance\nfix server\n",
			wantErrType: &domain.DataErr{},
			wantErrMsg:  "malformed dataset row 2: expected 2 tab-separated fields, got 1",
		},
		"malformed-row-too-many-fields": {
			content:     "text\tlabel\na\tb\tc\n",
			wantErrType: &domain.DataErr{},
			wantErrMsg:  "malformed dataset row 1: expected 2 tab-separated fields, got 3",
		},
		"empty-label": {
			content:     "text\tlabel\napprove invoice\t\n",
			wantErrType: &domain.DataErr{},
			wantErrMsg:  "malformed dataset row 1: label cannot be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeDataset(t, tt.content)

			examples, err := NewLoader().Load(context.Background(), path)
			if tt.wantErrType != nil {
				assert.IsType(t, tt.wantErrType, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				assert.Nil(t, examples)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExamples, examples)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist.tsv"))
	assert.IsType(t, &domain.NotFoundErr{}, err)
}

func TestLoader_Load_Restartable(t *testing.T) {
	path := writeDataset(t, "text\tlabel\napprove invoice\tFinance\n")
	loader := NewLoader()

	first, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	second, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
