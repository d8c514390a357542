package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
)

// ListPersons defines the interface for the ListPersons use case.
type ListPersons interface {
	Query(ctx context.Context) ([]domain.Person, error)
}

// ListPersonsImpl is the implementation of the ListPersons use case.
type ListPersonsImpl struct {
	personRepo domain.PersonRepository
}

// NewListPersonsImpl creates a new instance of ListPersonsImpl.
func NewListPersonsImpl(personRepo domain.PersonRepository) ListPersonsImpl {
	return ListPersonsImpl{
		personRepo: personRepo,
	}
}

// Query retrieves all persons in the store's fixed listing order.
func (lpi ListPersonsImpl) Query(ctx context.Context) ([]domain.Person, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	persons, err := lpi.personRepo.ListPersons(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return persons, nil
}

// InitListPersons initializes the ListPersons use case and registers it in the dependency container.
type InitListPersons struct {
	PersonRepo domain.PersonRepository `resolve:""`
}

// Initialize initializes the ListPersonsImpl use case and registers it in the dependency container.
func (ilp InitListPersons) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListPersons](NewListPersonsImpl(ilp.PersonRepo))
	return ctx, nil
}
