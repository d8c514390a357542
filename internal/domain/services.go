package domain

import (
	"sort"
	"strconv"
	"strings"
)

// SortPersonsByAge returns a copy of persons ordered by ascending age.
// For equal ages the relative order of the input is preserved, so the
// result is stable with respect to the listing order.
func SortPersonsByAge(persons []Person) []Person {
	sorted := make([]Person, len(persons))
	copy(sorted, persons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Age < sorted[j].Age
	})
	return sorted
}

// ParseImportLine validates and parses the first line of a bulk import file.
// The line must split into exactly four tab-separated fields:
// name, email, age, description. Nothing is written anywhere; the caller
// decides what to do with the draft.
func ParseImportLine(line string) (PersonDraft, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return PersonDraft{}, NewDataErr("invalid import data: expected four tab-separated values (name, email, age, description)")
	}

	age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return PersonDraft{}, NewDataErr("invalid import data: age must be a valid number")
	}
	if age < 0 {
		return PersonDraft{}, NewDataErr("invalid import data: age must be non-negative")
	}

	return PersonDraft{
		Name:        fields[0],
		Email:       fields[1],
		Age:         age,
		Description: fields[3],
	}, nil
}
