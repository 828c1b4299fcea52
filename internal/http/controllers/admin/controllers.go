package admin

import svc "github.com/dropDatabas3/recordsvc/internal/http/services/records"

// Controllers agrupa los controllers admin.
type Controllers struct {
	Records *RecordsController
}

// NewControllers crea el agregador de controllers admin.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Records: NewRecordsController(s.Records),
	}
}
