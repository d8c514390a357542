package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmachado-dev/staffcast/internal/domain"
	"github.com/rmachado-dev/staffcast/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	domainPerson = domain.Person{
		ID:                  1,
		Name:                "Alice",
		Email:               "alice@example.com",
		Age:                 30,
		Description:         "approves invoices",
		PredictedDepartment: "Finance",
		Department:          "Finance",
	}
	restPerson = PersonResp{
		Id:                  1,
		Name:                "Alice",
		Email:               "alice@example.com",
		Age:                 30,
		Description:         "approves invoices",
		PredictedDepartment: "Finance",
		Department:          "Finance",
	}
)

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func deserializeJSON[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func serveRequest(api StaffcastServer, method, target string, body []byte) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	api.Routes(mux)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestStaffcastServer_AddPerson(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(m *mocks.MockAddPerson)
		expectedStatus int
		expectedBody   *PersonResp
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, PersonReq{
				Name:        "Alice",
				Email:       "alice@example.com",
				Age:         30,
				Description: "approves invoices",
				Department:  "Finance",
			}),
			setupMocks: func(m *mocks.MockAddPerson) {
				m.EXPECT().
					Execute(mock.Anything, domain.PersonDraft{
						Name:        "Alice",
						Email:       "alice@example.com",
						Age:         30,
						Description: "approves invoices",
						Department:  "Finance",
					}).
					Return(domainPerson, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   &restPerson,
		},
		"validation-error": {
			requestBody: serializeJSON(t, PersonReq{
				Email:       "alice@example.com",
				Age:         30,
				Description: "approves invoices",
			}),
			setupMocks: func(m *mocks.MockAddPerson) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.Person{}, domain.NewValidationErr("name cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "name cannot be empty"},
			},
		},
		"conflict-duplicate-email": {
			requestBody: serializeJSON(t, PersonReq{
				Name:        "Alice",
				Email:       "alice@example.com",
				Age:         30,
				Description: "approves invoices",
			}),
			setupMocks: func(m *mocks.MockAddPerson) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.Person{}, domain.NewConflictErr("a person with this email already exists"))
			},
			expectedStatus: http.StatusConflict,
			expectedError: &ErrorResp{
				Error: Error{Code: CONFLICT, Message: "a person with this email already exists"},
			},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"name": "Alice", "age": "thirty"}`),
			setupMocks:     func(m *mocks.MockAddPerson) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			addPerson := mocks.NewMockAddPerson(t)
			tt.setupMocks(addPerson)

			api := StaffcastServer{
				Logger:           log.New(io.Discard, "", 0),
				AddPersonUseCase: addPerson,
			}
			rec := serveRequest(api, http.MethodPost, "/persons", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, deserializeJSON[PersonResp](t, rec.Body))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, deserializeJSON[ErrorResp](t, rec.Body))
			}
		})
	}
}

func TestStaffcastServer_UpdatePerson(t *testing.T) {
	tests := map[string]struct {
		target         string
		requestBody    []byte
		setupMocks     func(m *mocks.MockUpdatePerson)
		expectedStatus int
		expectedBody   *PersonResp
		expectedError  *ErrorResp
	}{
		"success": {
			target: "/persons/1",
			requestBody: serializeJSON(t, PersonReq{
				Name:        "Alice",
				Email:       "alice@example.com",
				Age:         30,
				Description: "approves invoices",
				Department:  "Finance",
			}),
			setupMocks: func(m *mocks.MockUpdatePerson) {
				m.EXPECT().
					Execute(mock.Anything, domain.Person{
						ID:          1,
						Name:        "Alice",
						Email:       "alice@example.com",
						Age:         30,
						Description: "approves invoices",
						Department:  "Finance",
					}).
					Return(domainPerson, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restPerson,
		},
		"not-found": {
			target: "/persons/99",
			requestBody: serializeJSON(t, PersonReq{
				Name:        "Alice",
				Email:       "alice@example.com",
				Age:         30,
				Description: "approves invoices",
			}),
			setupMocks: func(m *mocks.MockUpdatePerson) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.Person{}, domain.NewNotFoundErr("person with ID 99 not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &ErrorResp{
				Error: Error{Code: NOTFOUND, Message: "person with ID 99 not found"},
			},
		},
		"invalid-id": {
			target:         "/persons/abc",
			requestBody:    serializeJSON(t, PersonReq{Name: "Alice"}),
			setupMocks:     func(m *mocks.MockUpdatePerson) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "invalid person id: abc"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			updatePerson := mocks.NewMockUpdatePerson(t)
			tt.setupMocks(updatePerson)

			api := StaffcastServer{
				Logger:              log.New(io.Discard, "", 0),
				UpdatePersonUseCase: updatePerson,
			}
			rec := serveRequest(api, http.MethodPut, tt.target, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, deserializeJSON[PersonResp](t, rec.Body))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, deserializeJSON[ErrorResp](t, rec.Body))
			}
		})
	}
}

func TestStaffcastServer_RemovePerson(t *testing.T) {
	tests := map[string]struct {
		target         string
		setupMocks     func(m *mocks.MockRemovePerson)
		expectedStatus int
	}{
		"success": {
			target: "/persons/1",
			setupMocks: func(m *mocks.MockRemovePerson) {
				m.EXPECT().Execute(mock.Anything, int64(1)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"not-found": {
			target: "/persons/99",
			setupMocks: func(m *mocks.MockRemovePerson) {
				m.EXPECT().Execute(mock.Anything, int64(99)).Return(domain.NewNotFoundErr("person not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		"invalid-id": {
			target:         "/persons/abc",
			setupMocks:     func(m *mocks.MockRemovePerson) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			removePerson := mocks.NewMockRemovePerson(t)
			tt.setupMocks(removePerson)

			api := StaffcastServer{
				Logger:              log.New(io.Discard, "", 0),
				RemovePersonUseCase: removePerson,
			}
			rec := serveRequest(api, http.MethodDelete, tt.target, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestStaffcastServer_ListPersons(t *testing.T) {
	listPersons := mocks.NewMockListPersons(t)
	listPersons.EXPECT().Query(mock.Anything).Return([]domain.Person{domainPerson}, nil)

	api := StaffcastServer{
		Logger:             log.New(io.Discard, "", 0),
		ListPersonsUseCase: listPersons,
	}
	rec := serveRequest(api, http.MethodGet, "/persons", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ListPersonsResp{Items: []PersonResp{restPerson}}, deserializeJSON[ListPersonsResp](t, rec.Body))
}

func TestStaffcastServer_SortPersonsByAge(t *testing.T) {
	younger := domainPerson
	younger.ID = 2
	younger.Age = 25

	sortPersons := mocks.NewMockSortPersonsByAge(t)
	sortPersons.EXPECT().Query(mock.Anything).Return([]domain.Person{younger, domainPerson}, nil)

	api := StaffcastServer{
		Logger:                  log.New(io.Discard, "", 0),
		SortPersonsByAgeUseCase: sortPersons,
	}
	rec := serveRequest(api, http.MethodGet, "/persons/sorted-by-age", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := deserializeJSON[ListPersonsResp](t, rec.Body)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Items[0].Id)
	assert.Equal(t, int64(1), resp.Items[1].Id)
}

func TestStaffcastServer_ParseImport(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(m *mocks.MockParseImportFile)
		expectedStatus int
		expectedBody   *ParseImportResp
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, ParseImportReq{Path: "import.tsv"}),
			setupMocks: func(m *mocks.MockParseImportFile) {
				m.EXPECT().
					Execute(mock.Anything, "import.tsv").
					Return(domain.PersonDraft{
						Name:        "Alice",
						Email:       "alice@example.com",
						Age:         30,
						Description: "approves invoices",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &ParseImportResp{
				Name:        "Alice",
				Email:       "alice@example.com",
				Age:         30,
				Description: "approves invoices",
			},
		},
		"malformed-file": {
			requestBody: serializeJSON(t, ParseImportReq{Path: "broken.tsv"}),
			setupMocks: func(m *mocks.MockParseImportFile) {
				m.EXPECT().
					Execute(mock.Anything, "broken.tsv").
					Return(domain.PersonDraft{}, domain.NewDataErr("invalid import data: age must be a valid number"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "invalid import data: age must be a valid number"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parseImport := mocks.NewMockParseImportFile(t)
			tt.setupMocks(parseImport)

			api := StaffcastServer{
				Logger:                 log.New(io.Discard, "", 0),
				ParseImportFileUseCase: parseImport,
			}
			rec := serveRequest(api, http.MethodPost, "/import/parse", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, deserializeJSON[ParseImportResp](t, rec.Body))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, deserializeJSON[ErrorResp](t, rec.Body))
			}
		})
	}
}
