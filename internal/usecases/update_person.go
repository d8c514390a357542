package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
)

// UpdatePerson defines the interface for the UpdatePerson use case.
type UpdatePerson interface {
	Execute(ctx context.Context, person domain.Person) (domain.Person, error)
}

// UpdatePersonImpl is the implementation of the UpdatePerson use case.
type UpdatePersonImpl struct {
	uow       domain.UnitOfWork
	predictor domain.Predictor
}

// NewUpdatePersonImpl creates a new instance of UpdatePersonImpl.
func NewUpdatePersonImpl(uow domain.UnitOfWork, predictor domain.Predictor) UpdatePersonImpl {
	return UpdatePersonImpl{
		uow:       uow,
		predictor: predictor,
	}
}

// Execute replaces all mutable fields of an existing person. The predicted
// department is recomputed from the new description when a model is loaded;
// otherwise the previously stored prediction is kept.
func (upi UpdatePersonImpl) Execute(ctx context.Context, person domain.Person) (domain.Person, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := person.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Person{}, err
	}

	if err := upi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		existing, found, err := uow.Person().GetPerson(spanCtx, person.ID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("person with ID %d not found", person.ID))
		}

		exists, err := uow.Person().EmailExists(spanCtx, person.Email, person.ID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewConflictErr("a person with this email already exists")
		}

		predicted, err := upi.predictor.Predict(person.Description)
		if err != nil {
			if !errors.As(err, new(*domain.NoModelLoadedErr)) {
				return err
			}
			person.PredictedDepartment = existing.PredictedDepartment
		} else {
			person.PredictedDepartment = predicted
		}

		return uow.Person().UpdatePerson(spanCtx, person)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Person{}, err
	}

	return person, nil
}

// InitUpdatePerson initializes the UpdatePerson use case and registers it in the dependency container.
type InitUpdatePerson struct {
	Uow       domain.UnitOfWork `resolve:""`
	Predictor domain.Predictor  `resolve:""`
}

// Initialize initializes the UpdatePersonImpl use case and registers it in the dependency container.
func (iup InitUpdatePerson) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdatePerson](NewUpdatePersonImpl(iup.Uow, iup.Predictor))
	return ctx, nil
}
