package usecases

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
)

// ParseImportFile defines the interface for the ParseImportFile use case.
type ParseImportFile interface {
	Execute(ctx context.Context, path string) (domain.PersonDraft, error)
}

// ParseImportFileImpl is the implementation of the ParseImportFile use case.
// It only validates and parses; nothing is written to the store.
type ParseImportFileImpl struct{}

// NewParseImportFileImpl creates a new instance of ParseImportFileImpl.
func NewParseImportFileImpl() ParseImportFileImpl {
	return ParseImportFileImpl{}
}

// Execute reads the first line of the import file at path and parses it
// into a person draft.
func (pif ParseImportFileImpl) Execute(ctx context.Context, path string) (domain.PersonDraft, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = domain.NewNotFoundErr(fmt.Sprintf("import file %s does not exist", path))
		}
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PersonDraft{}, err
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return domain.PersonDraft{}, err
		}
		err := domain.NewDataErr("invalid import data: file is empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PersonDraft{}, err
	}

	draft, err := domain.ParseImportLine(strings.TrimRight(scanner.Text(), "\r"))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PersonDraft{}, err
	}
	return draft, nil
}

// InitParseImportFile initializes the ParseImportFile use case.
type InitParseImportFile struct{}

// Initialize registers the ParseImportFile use case in the dependency container.
func (ipf InitParseImportFile) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ParseImportFile](NewParseImportFileImpl())
	return ctx, nil
}
