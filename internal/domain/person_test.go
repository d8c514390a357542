package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson_Validate(t *testing.T) {
	valid := Person{
		Name:        "Alice",
		Email:       "alice@example.com",
		Age:         30,
		Description: "approves invoices and closes the books",
		Department:  "Finance",
	}

	tests := map[string]struct {
		mutate  func(p *Person)
		wantErr bool
		errMsg  string
	}{
		"valid-person": {
			mutate:  func(p *Person) {},
			wantErr: false,
		},
		"valid-without-department": {
			mutate:  func(p *Person) { p.Department = "" },
			wantErr: false,
		},
		"empty-name": {
			mutate:  func(p *Person) { p.Name = "" },
			wantErr: true,
			errMsg:  "name cannot be empty",
		},
		"empty-email": {
			mutate:  func(p *Person) { p.Email = "" },
			wantErr: true,
			errMsg:  "email cannot be empty",
		},
		"empty-description": {
			mutate:  func(p *Person) { p.Description = "" },
			wantErr: true,
			errMsg:  "description cannot be empty",
		},
		"negative-age": {
			mutate:  func(p *Person) { p.Age = -1 },
			wantErr: true,
			errMsg:  "age must be a non-negative number",
		},
		"zero-age": {
			mutate:  func(p *Person) { p.Age = 0 },
			wantErr: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			person := valid
			tt.mutate(&person)

			err := person.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.IsType(t, &ValidationErr{}, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
