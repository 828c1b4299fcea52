// Package record define la entidad Record (persona: id, nombre, apellido).
//
// Record es un valor inmutable: se construye validado con New y se modifica
// solo a través de WithNames, que devuelve una copia validada. Nunca existe
// un Record con campos inválidos.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxNameLength es el largo máximo (en caracteres) de name y lastName.
const MaxNameLength = 50

// ErrInvalid es la raíz de todos los errores de validación de Record.
// Usar errors.Is(err, record.ErrInvalid) para detectarlos.
var ErrInvalid = errors.New("invalid record")

var (
	ErrInvalidID       = fmt.Errorf("%w: ID must be a positive integer", ErrInvalid)
	ErrEmptyName       = fmt.Errorf("%w: name cannot be empty", ErrInvalid)
	ErrNameTooLong     = fmt.Errorf("%w: name cannot exceed %d characters", ErrInvalid, MaxNameLength)
	ErrEmptyLastName   = fmt.Errorf("%w: last name cannot be empty", ErrInvalid)
	ErrLastNameTooLong = fmt.Errorf("%w: last name cannot exceed %d characters", ErrInvalid, MaxNameLength)
)

// Record representa una persona.
type Record struct {
	id       int
	name     string
	lastName string
}

// New construye un Record validando los tres campos.
func New(id int, name, lastName string) (Record, error) {
	if err := validateID(id); err != nil {
		return Record{}, err
	}
	if err := validateName(name); err != nil {
		return Record{}, err
	}
	if err := validateLastName(lastName); err != nil {
		return Record{}, err
	}
	return Record{id: id, name: name, lastName: lastName}, nil
}

func (r Record) ID() int          { return r.id }
func (r Record) Name() string     { return r.name }
func (r Record) LastName() string { return r.lastName }

// IsZero indica si r es el valor cero (nunca construido por New).
func (r Record) IsZero() bool { return r.id == 0 }

// WithNames devuelve una copia con los campos provistos reemplazados.
// Un puntero nil deja el campo sin cambios. El ID nunca cambia.
func (r Record) WithNames(name, lastName *string) (Record, error) {
	out := r
	if name != nil {
		if err := validateName(*name); err != nil {
			return r, err
		}
		out.name = *name
	}
	if lastName != nil {
		if err := validateLastName(*lastName); err != nil {
			return r, err
		}
		out.lastName = *lastName
	}
	return out, nil
}

func (r Record) String() string {
	return fmt.Sprintf("Record(%d): %s %s", r.id, r.name, r.lastName)
}

// ─── Validación ───

func validateID(id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return ErrEmptyLastName
	}
	if utf8.RuneCountInString(lastName) > MaxNameLength {
		return ErrLastNameTooLong
	}
	return nil
}

// ─── JSON ───

// wire es la forma serializada: {"id","name","lastName"}.
type wire struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// MarshalJSON implementa json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{ID: r.id, Name: r.name, LastName: r.lastName})
}

// UnmarshalJSON reconstruye el Record re-validando sus campos.
func (r *Record) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	rec, err := New(w.ID, w.Name, w.LastName)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}
