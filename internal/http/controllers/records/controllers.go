package records

import svc "github.com/dropDatabas3/recordsvc/internal/http/services/records"

// Controllers agrupa los controllers del dominio records.
type Controllers struct {
	Records *RecordsController
}

// NewControllers crea el agregador de controllers de records.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Records: NewRecordsController(s.Records),
	}
}
