package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
)

// RemovePerson defines the interface for the RemovePerson use case.
type RemovePerson interface {
	Execute(ctx context.Context, id int64) error
}

// RemovePersonImpl is the implementation of the RemovePerson use case.
type RemovePersonImpl struct {
	uow domain.UnitOfWork
}

// NewRemovePersonImpl creates a new instance of RemovePersonImpl.
func NewRemovePersonImpl(uow domain.UnitOfWork) RemovePersonImpl {
	return RemovePersonImpl{
		uow: uow,
	}
}

// Execute deletes a person by its ID.
func (rpi RemovePersonImpl) Execute(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := rpi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Person().DeletePerson(spanCtx, id)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitRemovePerson initializes the RemovePerson use case.
type InitRemovePerson struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the RemovePerson use case in the dependency container.
func (irp InitRemovePerson) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RemovePerson](NewRemovePersonImpl(irp.Uow))
	return ctx, nil
}
