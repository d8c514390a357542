package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	personFields = []string{
		"id",
		"name",
		"email",
		"age",
		"description",
		"predicted_department",
		"department",
	}
)

// PersonRepository implements the domain.PersonRepository interface using
// PostgreSQL as the storage backend. Email uniqueness is enforced here at
// the store boundary; the unique index on the table is only a backstop.
type PersonRepository struct {
	sb squirrel.StatementBuilderType
}

// NewPersonRepository creates a new instance of PersonRepository.
func NewPersonRepository(br squirrel.BaseRunner) PersonRepository {
	return PersonRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListPersons returns all persons ordered by id. The order is fixed and
// stable across repeated calls; it is not insertion order.
func (pr PersonRepository) ListPersons(ctx context.Context) ([]domain.Person, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := pr.sb.
		Select(personFields...).
		From("persons").
		OrderBy("id").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var persons []domain.Person
	for rows.Next() {
		var p domain.Person
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.Age,
			&p.Description,
			&p.PredictedDepartment,
			&p.Department,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		persons = append(persons, p)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("persons.count", len(persons)))
	return persons, nil
}

// CreatePerson inserts a new person and returns it with the store-assigned id.
func (pr PersonRepository) CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := pr.sb.
		Insert("persons").
		Columns(
			"name",
			"email",
			"age",
			"description",
			"predicted_department",
			"department",
		).
		Values(
			person.Name,
			person.Email,
			person.Age,
			person.Description,
			person.PredictedDepartment,
			person.Department,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&person.ID)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Person{}, err
	}

	return person, nil
}

// UpdatePerson replaces all mutable fields of an existing person.
func (pr PersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := pr.sb.
		Update("persons").
		Set("name", person.Name).
		Set("email", person.Email).
		Set("age", person.Age).
		Set("description", person.Description).
		Set("predicted_department", person.PredictedDepartment).
		Set("department", person.Department).
		Where(squirrel.Eq{"id": person.ID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr("person not found")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// DeletePerson removes a person by its ID.
func (pr PersonRepository) DeletePerson(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := pr.sb.
		Delete("persons").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr("person not found")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// GetPerson retrieves a person by its ID.
func (pr PersonRepository) GetPerson(ctx context.Context, id int64) (domain.Person, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var p domain.Person
	err := pr.sb.
		Select(personFields...).
		From("persons").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.Age,
			&p.Description,
			&p.PredictedDepartment,
			&p.Department,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Person{}, false, nil
		}
		return domain.Person{}, false, err
	}

	return p, true, nil
}

// EmailExists reports whether another person already uses the given email.
func (pr PersonRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("exclude_id", excludeID),
	))
	defer span.End()

	qry := pr.sb.
		Select("1").
		From("persons").
		Where(squirrel.Eq{"email": email})
	if excludeID != 0 {
		qry = qry.Where(squirrel.NotEq{"id": excludeID})
	}

	var one int
	err := qry.Limit(1).QueryRowContext(spanCtx).Scan(&one)
	if err == sql.ErrNoRows {
		span.SetAttributes(attribute.Bool("email.exists", false))
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	span.SetAttributes(attribute.Bool("email.exists", true))
	return true, nil
}

// InitPersonRepository is a Symbiont initializer for PersonRepository.
type InitPersonRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the PersonRepository in the dependency container.
func (pr InitPersonRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PersonRepository](NewPersonRepository(pr.DB))
	return ctx, nil
}
