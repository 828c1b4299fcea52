// Package validation valida bodies JSON contra JSON Schemas antes de que
// lleguen a la lógica de dominio.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldError describe un error de validación de un campo del body.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result agrupa los errores de una validación.
type Result struct {
	Errors []FieldError
}

// Valid indica si no hubo errores.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }

// MissingRequired indica si algún error corresponde a un campo requerido ausente.
func (r *Result) MissingRequired() bool {
	for _, e := range r.Errors {
		if strings.HasPrefix(e.Message, "missing properties") {
			return true
		}
	}
	return false
}

// Detail resume los errores en una línea para AppError.Detail.
func (r *Result) Detail() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Field != "" {
			parts = append(parts, e.Field+": "+e.Message)
		} else {
			parts = append(parts, e.Message)
		}
	}
	return strings.Join(parts, "; ")
}

// Schema es un JSON Schema compilado.
type Schema struct {
	schema *jsonschema.Schema
}

// Compile compila un schema (Draft 2020-12) identificado por name.
func Compile(name, src string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return &Schema{schema: s}, nil
}

// MustCompile es como Compile pero hace panic si el schema es inválido.
// Solo para schemas embebidos en el binario.
func MustCompile(name, src string) *Schema {
	s, err := Compile(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateBytes decodifica raw y lo valida. Devuelve error solo si raw no es JSON.
func (s *Schema) ValidateBytes(raw []byte) (*Result, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return s.Validate(doc), nil
}

// Validate valida un documento ya decodificado con encoding/json.
func (s *Schema) Validate(doc any) *Result {
	result := &Result{}
	if err := s.schema.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			collect(verr, result)
		} else {
			result.Errors = append(result.Errors, FieldError{Message: err.Error()})
		}
	}
	return result
}

// collect recorre las causas hasta las hojas, que son los errores concretos.
func collect(err *jsonschema.ValidationError, result *Result) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, FieldError{
			Field:   fieldFromPointer(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collect(cause, result)
	}
}

// fieldFromPointer convierte un JSON Pointer ("/a/b") a notación con puntos.
func fieldFromPointer(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "/", ".")
}
