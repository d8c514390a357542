package domain

import (
	"context"
)

// Departments selectable in the catalog. The predicted department always
// comes from the label vocabulary of the trained model and may differ from
// this set.
var KnownDepartments = []string{"HR", "IT", "Sales", "Finance", "Operations"}

// Person represents a catalog entry for one person.
type Person struct {
	ID                  int64
	Name                string
	Email               string
	Age                 int
	Description         string
	PredictedDepartment string
	Department          string
}

// Validate checks the presence and shape of all required fields. The ID is
// store-assigned and not validated here.
func (p Person) Validate() error {
	if p.Name == "" {
		return NewValidationErr("name cannot be empty")
	}
	if p.Email == "" {
		return NewValidationErr("email cannot be empty")
	}
	if p.Description == "" {
		return NewValidationErr("description cannot be empty")
	}
	if p.Age < 0 {
		return NewValidationErr("age must be a non-negative number")
	}
	return nil
}

// PersonDraft is a Person before the store assigns its ID.
type PersonDraft struct {
	Name        string
	Email       string
	Age         int
	Description string
	Department  string
}

// PersonRepository defines the interface for interacting with persons in the
// data store. Each call is a self-contained transaction against the backing
// store; concurrent writers racing on the same id or email are expected to
// be serialized by the caller (single-writer assumption).
type PersonRepository interface {
	// ListPersons retrieves all persons in a fixed, repeat-stable order.
	// Insertion order is not preserved.
	ListPersons(ctx context.Context) ([]Person, error)

	// CreatePerson inserts a new person and returns it with the
	// store-assigned ID.
	CreatePerson(ctx context.Context, person Person) (Person, error)

	// UpdatePerson replaces all mutable fields of the person identified by
	// person.ID.
	UpdatePerson(ctx context.Context, person Person) error

	// DeletePerson removes the person identified by id.
	DeletePerson(ctx context.Context, id int64) error

	// GetPerson retrieves a person by its unique identifier.
	GetPerson(ctx context.Context, id int64) (Person, bool, error)

	// EmailExists reports whether a person with the given email exists,
	// excluding the person identified by excludeID (pass 0 to exclude none).
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}
