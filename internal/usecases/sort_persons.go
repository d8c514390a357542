package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
)

// SortPersonsByAge defines the interface for the SortPersonsByAge use case.
type SortPersonsByAge interface {
	Query(ctx context.Context) ([]domain.Person, error)
}

// SortPersonsByAgeImpl is the implementation of the SortPersonsByAge use case.
type SortPersonsByAgeImpl struct {
	personRepo domain.PersonRepository
}

// NewSortPersonsByAgeImpl creates a new instance of SortPersonsByAgeImpl.
func NewSortPersonsByAgeImpl(personRepo domain.PersonRepository) SortPersonsByAgeImpl {
	return SortPersonsByAgeImpl{
		personRepo: personRepo,
	}
}

// Query retrieves all persons ordered by ascending age. Persons of equal age
// keep their relative order from the store's listing order.
func (spi SortPersonsByAgeImpl) Query(ctx context.Context) ([]domain.Person, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	persons, err := spi.personRepo.ListPersons(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return domain.SortPersonsByAge(persons), nil
}

// InitSortPersonsByAge initializes the SortPersonsByAge use case and registers it in the dependency container.
type InitSortPersonsByAge struct {
	PersonRepo domain.PersonRepository `resolve:""`
}

// Initialize initializes the SortPersonsByAgeImpl use case and registers it in the dependency container.
func (isp InitSortPersonsByAge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SortPersonsByAge](NewSortPersonsByAgeImpl(isp.PersonRepo))
	return ctx, nil
}
