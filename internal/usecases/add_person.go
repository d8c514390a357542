package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
)

// AddPerson defines the interface for the AddPerson use case.
type AddPerson interface {
	Execute(ctx context.Context, draft domain.PersonDraft) (domain.Person, error)
}

// AddPersonImpl is the implementation of the AddPerson use case.
type AddPersonImpl struct {
	uow       domain.UnitOfWork
	predictor domain.Predictor
}

// NewAddPersonImpl creates a new instance of AddPersonImpl.
func NewAddPersonImpl(uow domain.UnitOfWork, predictor domain.Predictor) AddPersonImpl {
	return AddPersonImpl{
		uow:       uow,
		predictor: predictor,
	}
}

// Execute validates the draft, predicts a department from its description
// when a model is loaded, and stores the new person. Without a loaded model
// the person is stored with an empty predicted department.
func (api AddPersonImpl) Execute(ctx context.Context, draft domain.PersonDraft) (domain.Person, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	person := domain.Person{
		Name:        draft.Name,
		Email:       draft.Email,
		Age:         draft.Age,
		Description: draft.Description,
		Department:  draft.Department,
	}
	if err := person.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Person{}, err
	}

	predicted, err := api.predictor.Predict(person.Description)
	if err != nil {
		if !errors.As(err, new(*domain.NoModelLoadedErr)) {
			telemetry.RecordErrorAndStatus(span, err)
			return domain.Person{}, err
		}
	} else {
		person.PredictedDepartment = predicted
	}

	if err := api.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		exists, err := uow.Person().EmailExists(spanCtx, person.Email, 0)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewConflictErr("a person with this email already exists")
		}

		person, err = uow.Person().CreatePerson(spanCtx, person)
		return err
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Person{}, err
	}

	return person, nil
}

// InitAddPerson initializes the AddPerson use case and registers it in the dependency container.
type InitAddPerson struct {
	Uow       domain.UnitOfWork `resolve:""`
	Predictor domain.Predictor  `resolve:""`
}

// Initialize initializes the AddPersonImpl use case and registers it in the dependency container.
func (iap InitAddPerson) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AddPerson](NewAddPersonImpl(iap.Uow, iap.Predictor))
	return ctx, nil
}
