// Package seed carga records iniciales desde un archivo YAML al arrancar.
//
// Formato:
//
//	records:
//	  - name: John
//	    lastName: Doe
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
)

// File es el documento YAML de seed.
type File struct {
	Records []Entry `yaml:"records"`
}

// Entry es un record a crear. El ID lo asigna el repositorio.
type Entry struct {
	Name     string `yaml:"name"`
	LastName string `yaml:"lastName"`
}

// Creator da de alta records. Lo cumplen el repositorio en memoria y el
// cliente HTTP, así el mismo archivo sirve para arrancar el servidor o
// para poblar uno remoto.
type Creator interface {
	Create(ctx context.Context, name, lastName string) (record.Record, error)
}

// LoadFile abre path y aplica su contenido sobre repo.
func LoadFile(ctx context.Context, path string, repo Creator) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	defer f.Close()
	return Load(ctx, f, repo)
}

// Load decodifica el YAML y crea cada entrada en orden.
// Se detiene en la primera entrada inválida; las anteriores quedan creadas.
func Load(ctx context.Context, r io.Reader, repo Creator) (int, error) {
	log := logger.FromWithFields(ctx, logger.Component("seed"))

	doc, err := Parse(r)
	if err != nil {
		return 0, err
	}

	for i, e := range doc.Records {
		if _, err := repo.Create(ctx, e.Name, e.LastName); err != nil {
			return i, fmt.Errorf("seed: entry %d: %w", i, err)
		}
	}

	log.Info("seed loaded", logger.Count(len(doc.Records)))
	return len(doc.Records), nil
}

// Parse decodifica un documento de seed. Un documento vacío no es error.
func Parse(r io.Reader) (File, error) {
	var doc File
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return File{}, nil
		}
		return File{}, fmt.Errorf("seed: decode: %w", err)
	}
	return doc, nil
}
