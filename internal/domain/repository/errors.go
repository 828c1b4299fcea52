package repository

import "errors"

// ErrNotFound indica que el recurso solicitado no existe.
// Los repositorios señalan ausencia con un bool; los services lo
// convierten en ErrNotFound cuando necesitan propagarlo como error.
var ErrNotFound = errors.New("not found")

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
