// Package helpers contiene utilidades HTTP compartidas por los controllers.
package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/recordsvc/internal/http/errors"
)

// MaxBodyBytes limita el tamaño de los bodies JSON.
const MaxBodyBytes = 64 << 10

// WriteJSON escribe una respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ReadBody lee el body completo respetando MaxBodyBytes.
// Un Content-Type explícito distinto de JSON devuelve ErrUnsupportedMediaType;
// sin Content-Type se asume JSON.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if ct := strings.TrimSpace(r.Header.Get("Content-Type")); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || (mt != "application/json" && !strings.HasSuffix(mt, "+json")) {
			return nil, httperrors.ErrUnsupportedMediaType
		}
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, httperrors.ErrBodyTooLarge
		}
		return nil, httperrors.ErrBadRequest.WithCause(err)
	}
	return raw, nil
}
