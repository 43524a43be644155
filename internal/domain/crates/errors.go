package crates

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrModelNotFound    = errors.New("crate model not found")
	ErrInvalidCatalog   = errors.New("invalid crate catalog")
	ErrCatalogNotLoaded = errors.New("crate catalog not loaded")
)

// FieldProblem describe por qué un campo fue rechazado.
type FieldProblem string

const (
	ProblemMissing     FieldProblem = "missing"
	ProblemNotNumeric  FieldProblem = "not_numeric"
	ProblemNonPositive FieldProblem = "non_positive"
	ProblemNegative    FieldProblem = "negative"
	ProblemUnknown     FieldProblem = "unknown_value"
	ProblemOutOfRange  FieldProblem = "out_of_range"
)

type FieldError struct {
	Field   string       `json:"field"`
	Problem FieldProblem `json:"problem"`
}

// ValidationError es el único error que devuelve el normalizador.
// Es recuperable: el caller debe volver a pedir las medidas.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Problem))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has indica si field aparece con el problema dado.
func (e *ValidationError) Has(field string, problem FieldProblem) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Problem == problem {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field string, problem FieldProblem) {
	e.Fields = append(e.Fields, FieldError{Field: field, Problem: problem})
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
