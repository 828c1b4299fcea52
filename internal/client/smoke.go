package client

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/recordsvc/internal/view"
)

// Smoke recorre el CRUD completo contra un servidor vivo: alta de tres
// records, listado, lectura, búsqueda, update y borrado. Devuelve el
// primer error y deja los datos creados en el servidor.
func Smoke(ctx context.Context, c *Client, out *view.Console) error {
	step := 0
	next := func(title string) {
		step++
		out.Info(fmt.Sprintf("%d. %s", step, title))
	}

	next("Creating records...")
	var ids []int
	for _, p := range [][2]string{{"John", "Doe"}, {"Jane", "Smith"}, {"Bob", "Johnson"}} {
		rec, err := c.Create(ctx, p[0], p[1])
		if err != nil {
			return fmt.Errorf("create %s %s: %w", p[0], p[1], err)
		}
		ids = append(ids, rec.ID())
		out.Success("Created: " + rec.String())
	}

	next("Getting all records...")
	all, err := c.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	out.Records(all)

	next("Getting record by ID...")
	rec, err := c.Get(ctx, ids[0])
	if err != nil {
		return fmt.Errorf("get %d: %w", ids[0], err)
	}
	out.Record(rec)

	next("Searching records...")
	found, err := c.Search(ctx, "John")
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	out.Records(found)

	next("Updating record...")
	name, lastName := "Johnny", "Doe"
	rec, err = c.Update(ctx, ids[0], &name, &lastName)
	if err != nil {
		return fmt.Errorf("update %d: %w", ids[0], err)
	}
	out.Success("Updated: " + rec.String())

	next("Deleting record...")
	if _, err := c.Delete(ctx, ids[2]); err != nil {
		return fmt.Errorf("delete %d: %w", ids[2], err)
	}
	out.Success(fmt.Sprintf("Deleted record with ID: %d", ids[2]))

	next("Final state of records...")
	all, err = c.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	out.Records(all)

	out.Success("All checks completed successfully")
	return nil
}
