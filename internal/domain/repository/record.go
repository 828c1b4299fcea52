package repository

import (
	"context"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
)

// RecordRepository define las operaciones CRUD + búsqueda sobre records.
type RecordRepository interface {
	// Create asigna el próximo ID, valida y guarda el record.
	// Si la validación falla no se inserta nada y el contador no avanza.
	Create(ctx context.Context, name, lastName string) (record.Record, error)

	// FindByID busca un record por ID. Retorna false si no existe.
	FindByID(ctx context.Context, id int) (record.Record, bool)

	// FindByName busca records cuyo name o lastName contenga term
	// (case-insensitive), en orden de inserción. Un term vacío no matchea nada.
	FindByName(ctx context.Context, term string) []record.Record

	// FindAll retorna todos los records en orden de inserción.
	FindAll(ctx context.Context) []record.Record

	// Update aplica solo los campos no-nil. Retorna false si el ID no existe.
	// Si un valor provisto es inválido retorna error y el record no cambia.
	Update(ctx context.Context, id int, name, lastName *string) (record.Record, bool, error)

	// Delete elimina un record. Retorna false si no existía.
	Delete(ctx context.Context, id int) bool

	// Count retorna la cantidad de records almacenados.
	Count(ctx context.Context) int

	// Clear elimina todos los records, reinicia el contador de IDs a 1 y
	// retorna cuántos había.
	Clear(ctx context.Context) int
}
