// Package memory implementa repository.RecordRepository en memoria.
//
// El estado (map, índice de orden y contador) vive en una instancia construida
// con NewRecordRepository; no hay estado global. Todas las operaciones toman
// el mutex una sola vez, por lo que cada operación es atómica.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
	"github.com/dropDatabas3/recordsvc/internal/domain/repository"
)

// RecordRepository guarda records en un map con orden de inserción.
type RecordRepository struct {
	mu      sync.RWMutex
	records map[int]record.Record
	order   []int
	nextID  int
}

var _ repository.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository crea un repositorio vacío con el contador en 1.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		records: make(map[int]record.Record),
		nextID:  1,
	}
}

func (s *RecordRepository) Create(ctx context.Context, name, lastName string) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Un create inválido no consume ID.
	rec, err := record.New(s.nextID, name, lastName)
	if err != nil {
		return record.Record{}, err
	}
	s.nextID++
	s.records[rec.ID()] = rec
	s.order = append(s.order, rec.ID())
	return rec, nil
}

func (s *RecordRepository) FindByID(ctx context.Context, id int) (record.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

func (s *RecordRepository) FindByName(ctx context.Context, term string) []record.Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := []record.Record{}
	if needle == "" {
		return out
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		rec := s.records[id]
		if strings.Contains(strings.ToLower(rec.Name()), needle) ||
			strings.Contains(strings.ToLower(rec.LastName()), needle) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *RecordRepository) FindAll(ctx context.Context) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]record.Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func (s *RecordRepository) Update(ctx context.Context, id int, name, lastName *string) (record.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.records[id]
	if !ok {
		return record.Record{}, false, nil
	}
	next, err := cur.WithNames(name, lastName)
	if err != nil {
		return cur, true, err
	}
	s.records[id] = next
	return next, true, nil
}

func (s *RecordRepository) Delete(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *RecordRepository) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *RecordRepository) Clear(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records)
	s.records = make(map[int]record.Record)
	s.order = nil
	s.nextID = 1
	return n
}
