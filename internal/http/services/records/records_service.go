package records

import (
	"context"
	"errors"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
	"github.com/dropDatabas3/recordsvc/internal/domain/repository"
	"github.com/dropDatabas3/recordsvc/internal/observability/logger"
)

// RecordService define las operaciones sobre records para la API.
type RecordService interface {
	List(ctx context.Context) []record.Record
	Get(ctx context.Context, id int) (record.Record, error)
	Search(ctx context.Context, term string) []record.Record
	Create(ctx context.Context, name, lastName string) (record.Record, error)
	Update(ctx context.Context, id int, name, lastName *string) (record.Record, error)
	Delete(ctx context.Context, id int) error
	Reset(ctx context.Context) int
}

// OpRecorder recibe el resultado de cada operación (métricas).
type OpRecorder interface {
	RecordOp(op, result string)
}

type recordService struct {
	repo    repository.RecordRepository
	metrics OpRecorder
}

// NewRecordService crea el service sobre el repositorio dado.
// metrics puede ser nil.
func NewRecordService(repo repository.RecordRepository, metrics OpRecorder) RecordService {
	return &recordService{repo: repo, metrics: metrics}
}

const componentRecords = "records"

// Resultados reportados a OpRecorder.
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
)

func (s *recordService) observe(op, result string) {
	if s.metrics != nil {
		s.metrics.RecordOp(op, result)
	}
}

func (s *recordService) List(ctx context.Context) []record.Record {
	recs := s.repo.FindAll(ctx)
	logger.From(ctx).Debug("records listed",
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("List"),
		logger.Count(len(recs)),
	)
	s.observe("list", resultOK)
	return recs
}

func (s *recordService) Get(ctx context.Context, id int) (record.Record, error) {
	rec, ok := s.repo.FindByID(ctx, id)
	if !ok {
		s.observe("get", resultNotFound)
		return record.Record{}, repository.ErrNotFound
	}
	s.observe("get", resultOK)
	return rec, nil
}

func (s *recordService) Search(ctx context.Context, term string) []record.Record {
	recs := s.repo.FindByName(ctx, term)
	logger.From(ctx).Debug("records searched",
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Search"),
		logger.SearchTerm(term),
		logger.Count(len(recs)),
	)
	if len(recs) == 0 {
		s.observe("search", resultNotFound)
	} else {
		s.observe("search", resultOK)
	}
	return recs
}

func (s *recordService) Create(ctx context.Context, name, lastName string) (record.Record, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Create"),
	)

	rec, err := s.repo.Create(ctx, name, lastName)
	if err != nil {
		log.Warn("create rejected", logger.Err(err))
		s.observe("create", resultInvalid)
		return record.Record{}, err
	}

	log.Info("record created", logger.RecordID(rec.ID()))
	s.observe("create", resultOK)
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, id int, name, lastName *string) (record.Record, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Update"),
		logger.RecordID(id),
	)

	rec, ok, err := s.repo.Update(ctx, id, name, lastName)
	if !ok {
		s.observe("update", resultNotFound)
		return record.Record{}, repository.ErrNotFound
	}
	if err != nil {
		log.Warn("update rejected", logger.Err(err))
		s.observe("update", resultInvalid)
		return record.Record{}, err
	}

	log.Info("record updated")
	s.observe("update", resultOK)
	return rec, nil
}

func (s *recordService) Delete(ctx context.Context, id int) error {
	if !s.repo.Delete(ctx, id) {
		s.observe("delete", resultNotFound)
		return repository.ErrNotFound
	}
	logger.From(ctx).Info("record deleted",
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Delete"),
		logger.RecordID(id),
	)
	s.observe("delete", resultOK)
	return nil
}

func (s *recordService) Reset(ctx context.Context) int {
	n := s.repo.Clear(ctx)
	logger.From(ctx).Warn("records cleared",
		logger.Layer("service"),
		logger.Component(componentRecords),
		logger.Op("Reset"),
		logger.Count(n),
	)
	s.observe("reset", resultOK)
	return n
}

// IsValidation indica si err proviene de una regla de la entidad.
func IsValidation(err error) bool {
	return errors.Is(err, record.ErrInvalid)
}
