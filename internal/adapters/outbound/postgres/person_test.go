package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (PersonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	return NewPersonRepository(db), mock, func() { db.Close() } //nolint:errcheck
}

func samplePerson() domain.Person {
	return domain.Person{
		ID:                  1,
		Name:                "Alice",
		Email:               "alice@example.com",
		Age:                 30,
		Description:         "approves invoices",
		PredictedDepartment: "Finance",
		Department:          "Finance",
	}
}

func TestPersonRepository_CreatePerson(t *testing.T) {
	person := samplePerson()
	person.ID = 0

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		wantID          int64
		wantErr         error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO persons (name,email,age,description,predicted_department,department) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id").
					WithArgs(
						person.Name,
						person.Email,
						person.Age,
						person.Description,
						person.PredictedDepartment,
						person.Department,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO persons (name,email,age,description,predicted_department,department) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id").
					WithArgs(
						person.Name,
						person.Email,
						person.Age,
						person.Description,
						person.PredictedDepartment,
						person.Department,
					).
					WillReturnError(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo, mock, closeDB := newMockRepo(t)
			defer closeDB()
			tt.setExpectations(mock)

			got, gotErr := repo.CreatePerson(context.Background(), person)
			assert.Equal(t, tt.wantErr, gotErr)
			if tt.wantErr == nil {
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, person.Email, got.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPersonRepository_ListPersons(t *testing.T) {
	listQuery := "SELECT id, name, email, age, description, predicted_department, department FROM persons ORDER BY id"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		wantCount       int
		wantErr         error
	}{
		"returns-all-ordered-by-id": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "age", "description", "predicted_department", "department"}).
					AddRow(int64(1), "Alice", "alice@example.com", 30, "approves invoices", "Finance", "Finance").
					AddRow(int64(2), "Bob", "bob@example.com", 41, "fixes servers", "IT", "")
				mock.ExpectQuery(listQuery).WillReturnRows(rows)
			},
			wantCount: 2,
		},
		"empty-store": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "age", "description", "predicted_department", "department"}))
			},
			wantCount: 0,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listQuery).WillReturnError(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo, mock, closeDB := newMockRepo(t)
			defer closeDB()
			tt.setExpectations(mock)

			persons, gotErr := repo.ListPersons(context.Background())
			assert.Equal(t, tt.wantErr, gotErr)
			assert.Len(t, persons, tt.wantCount)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPersonRepository_UpdatePerson(t *testing.T) {
	person := samplePerson()
	updateQuery := "UPDATE persons SET name = $1, email = $2, age = $3, description = $4, predicted_department = $5, department = $6 WHERE id = $7"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		wantErr         error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(person.Name, person.Email, person.Age, person.Description, person.PredictedDepartment, person.Department, person.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(person.Name, person.Email, person.Age, person.Description, person.PredictedDepartment, person.Department, person.ID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.NewNotFoundErr("person not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo, mock, closeDB := newMockRepo(t)
			defer closeDB()
			tt.setExpectations(mock)

			gotErr := repo.UpdatePerson(context.Background(), person)
			assert.Equal(t, tt.wantErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPersonRepository_DeletePerson(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		wantErr         error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM persons WHERE id = $1").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM persons WHERE id = $1").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.NewNotFoundErr("person not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo, mock, closeDB := newMockRepo(t)
			defer closeDB()
			tt.setExpectations(mock)

			gotErr := repo.DeletePerson(context.Background(), 1)
			assert.Equal(t, tt.wantErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPersonRepository_GetPerson(t *testing.T) {
	getQuery := "SELECT id, name, email, age, description, predicted_department, department FROM persons WHERE id = $1"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		wantFound       bool
	}{
		"found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "age", "description", "predicted_department", "department"}).
					AddRow(int64(1), "Alice", "alice@example.com", 30, "approves invoices", "Finance", "Finance")
				mock.ExpectQuery(getQuery).WithArgs(int64(1)).WillReturnRows(rows)
			},
			wantFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getQuery).WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "age", "description", "predicted_department", "department"}))
			},
			wantFound: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo, mock, closeDB := newMockRepo(t)
			defer closeDB()
			tt.setExpectations(mock)

			person, found, gotErr := repo.GetPerson(context.Background(), 1)
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, "alice@example.com", person.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPersonRepository_EmailExists(t *testing.T) {
	tests := map[string]struct {
		excludeID       int64
		setExpectations func(mock sqlmock.Sqlmock)
		wantExists      bool
	}{
		"exists": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT 1 FROM persons WHERE email = $1 LIMIT 1").
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			wantExists: true,
		},
		"missing": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT 1 FROM persons WHERE email = $1 LIMIT 1").
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
			},
			wantExists: false,
		},
		"excludes-own-row": {
			excludeID: 5,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT 1 FROM persons WHERE email = $1 AND id <> $2 LIMIT 1").
					WithArgs("alice@example.com", int64(5)).
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
			},
			wantExists: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo, mock, closeDB := newMockRepo(t)
			defer closeDB()
			tt.setExpectations(mock)

			exists, gotErr := repo.EmailExists(context.Background(), "alice@example.com", tt.excludeID)
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.wantExists, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
