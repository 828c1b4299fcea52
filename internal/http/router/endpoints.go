package router

// Endpoints devuelve el catálogo publicado en GET /: "MÉTODO ruta" -> descripción.
func Endpoints(basePath string, adminReset bool) map[string]string {
	base := NormalizeBasePath(basePath)
	out := map[string]string{
		"GET " + base + "/records":               "Get all records",
		"GET " + base + "/records/:id":           "Get record by ID",
		"GET " + base + "/records/search?q=term": "Search records",
		"POST " + base + "/records":              "Create new record",
		"PUT " + base + "/records/:id":           "Update record",
		"DELETE " + base + "/records/:id":        "Delete record",
		"GET /readyz":                            "Readiness probe",
	}
	if adminReset {
		out["POST "+base+"/admin/records/reset"] = "Delete all records and restart ids"
	}
	return out
}
