package validation

// Schemas de los bodies de /records. Solo validan forma (tipos y presencia);
// las reglas de contenido (trim, largo) son invariantes de la entidad Record.

const createRecordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "lastName"],
  "properties": {
    "name":     {"type": "string", "minLength": 1},
    "lastName": {"type": "string", "minLength": 1}
  }
}`

const updateRecordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name":     {"type": "string"},
    "lastName": {"type": "string"}
  }
}`

var (
	// CreateRecord valida el body de POST /records.
	CreateRecord = MustCompile("create_record.json", createRecordSchema)
	// UpdateRecord valida el body de PUT /records/{id}.
	UpdateRecord = MustCompile("update_record.json", updateRecordSchema)
)
