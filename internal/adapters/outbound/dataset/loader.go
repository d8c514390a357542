// Package dataset loads labeled training examples from tab-separated files.
package dataset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Loader implements domain.DatasetLoader for UTF-8 tab-separated files with
// a header row and exactly two columns: text and label. Column position is
// what matters, the header names are informative only.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() Loader {
	return Loader{}
}

// Load reads the whole dataset at path. A single malformed row fails the
// load: a silently truncated training set would corrupt evaluation.
func (l Loader) Load(ctx context.Context, path string) ([]domain.TrainingExample, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("dataset.path", path),
	))
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = domain.NewNotFoundErr(fmt.Sprintf("training dataset not found: %s", path))
		}
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var examples []domain.TrainingExample
	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() {
		line := scanner.Text()
		row++
		if row == 1 {
			// Header row.
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			err := domain.NewDataErr(fmt.Sprintf("malformed dataset row %d: expected 2 tab-separated fields, got %d", row-1, len(fields)))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		if fields[1] == "" {
			err := domain.NewDataErr(fmt.Sprintf("malformed dataset row %d: label cannot be empty", row-1))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}

		// Examples with empty text are kept on purpose.
		examples = append(examples, domain.TrainingExample{
			Text:  fields[0],
			Label: fields[1],
		})
	}
	if err := scanner.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if len(examples) == 0 {
		err := domain.NewDataErr("dataset is empty: no example rows after the header")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("dataset.examples", len(examples)))
	return examples, nil
}

// InitLoader is a Symbiont initializer for the dataset Loader.
type InitLoader struct{}

// Initialize registers the Loader in the dependency container.
func (il InitLoader) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.DatasetLoader](NewLoader())
	return ctx, nil
}
