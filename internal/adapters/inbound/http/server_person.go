package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rmachado-dev/staffcast/internal/domain"
)

// ListPersons returns all persons in the store's fixed listing order.
func (api StaffcastServer) ListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := api.ListPersonsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing persons: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListPersonsResp{Items: []PersonResp{}}
	for _, p := range persons {
		resp.Items = append(resp.Items, toPerson(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

// SortPersonsByAge returns all persons ordered by ascending age.
func (api StaffcastServer) SortPersonsByAge(w http.ResponseWriter, r *http.Request) {
	persons, err := api.SortPersonsByAgeUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error sorting persons by age: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListPersonsResp{Items: []PersonResp{}}
	for _, p := range persons {
		resp.Items = append(resp.Items, toPerson(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

// AddPerson creates a new person from the request body.
func (api StaffcastServer) AddPerson(w http.ResponseWriter, r *http.Request) {
	var req PersonReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	person, err := api.AddPersonUseCase.Execute(r.Context(), domain.PersonDraft{
		Name:        req.Name,
		Email:       req.Email,
		Age:         req.Age,
		Description: req.Description,
		Department:  req.Department,
	})
	if err != nil {
		api.Logger.Printf("Error adding person: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toPerson(person))
}

// UpdatePerson replaces an existing person with the request body.
func (api StaffcastServer) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePersonID(w, r)
	if !ok {
		return
	}

	var req PersonReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	person, err := api.UpdatePersonUseCase.Execute(r.Context(), domain.Person{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Age:         req.Age,
		Description: req.Description,
		Department:  req.Department,
	})
	if err != nil {
		api.Logger.Printf("Error updating person: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toPerson(person))
}

// RemovePerson deletes a person by its ID.
func (api StaffcastServer) RemovePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePersonID(w, r)
	if !ok {
		return
	}

	if err := api.RemovePersonUseCase.Execute(r.Context(), id); err != nil {
		api.Logger.Printf("Error removing person: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ParseImport parses the first line of an import file into a person draft.
func (api StaffcastServer) ParseImport(w http.ResponseWriter, r *http.Request) {
	var req ParseImportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	draft, err := api.ParseImportFileUseCase.Execute(r.Context(), req.Path)
	if err != nil {
		api.Logger.Printf("Error parsing import file: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, ParseImportResp{
		Name:        draft.Name,
		Email:       draft.Email,
		Age:         draft.Age,
		Description: draft.Description,
	})
}

func parsePersonID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid person id: %s", r.PathValue("id"))

		respondError(w, errResp)
		return 0, false
	}
	return id, true
}
