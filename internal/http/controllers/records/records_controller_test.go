package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "github.com/dropDatabas3/recordsvc/internal/http/services/records"
	"github.com/dropDatabas3/recordsvc/internal/store/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := NewControllers(svc.NewServices(svc.Deps{Repo: memory.NewRecordRepository()})).Records

	r := chi.NewRouter()
	r.Get("/records", ctrl.List)
	r.Get("/records/search", ctrl.Search)
	r.Post("/records", ctrl.Create)
	r.Get("/records/{id}", ctrl.Get)
	r.Put("/records/{id}", ctrl.Update)
	r.Delete("/records/{id}", ctrl.Delete)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Code
}

func TestList_EmptyIsNoContent(t *testing.T) {
	rr := do(t, newTestRouter(t), http.MethodGet, "/records", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestCreate(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/records", `{"name":"John","lastName":"Doe"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Doe"}`, rr.Body.String())
	assert.Equal(t, "/records/1", rr.Header().Get("Location"))

	rr = do(t, h, http.MethodGet, "/records", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"John","lastName":"Doe"}]`, rr.Body.String())
}

func TestCreate_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		code string
	}{
		{"missing lastName", `{"name":"John"}`, "MISSING_FIELDS"},
		{"empty object", `{}`, "MISSING_FIELDS"},
		{"empty body", "", "MISSING_FIELDS"},
		{"wrong type", `{"name":1,"lastName":"Doe"}`, "VALIDATION_FAILED"},
		{"empty string", `{"name":"","lastName":"Doe"}`, "VALIDATION_FAILED"},
		{"blank name", `{"name":"   ","lastName":"Doe"}`, "VALIDATION_FAILED"},
		{"too long", `{"name":"` + strings.Repeat("a", 51) + `","lastName":"Doe"}`, "VALIDATION_FAILED"},
		{"malformed", `{"name":`, "INVALID_JSON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(t)
			rr := do(t, h, http.MethodPost, "/records", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tc.code, errorCode(t, rr))

			// nada se insertó
			assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodGet, "/records", "").Code)
		})
	}
}

func TestGet(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/records", `{"name":"John","lastName":"Doe"}`)

	rr := do(t, h, http.MethodGet, "/records/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Doe"}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/records/99", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "RECORD_NOT_FOUND", errorCode(t, rr))

	for _, bad := range []string{"abc", "0", "-3", "1.5"} {
		rr = do(t, h, http.MethodGet, "/records/"+bad, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, bad)
		assert.Equal(t, "INVALID_PARAMETER", errorCode(t, rr), bad)
	}
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/records", `{"name":"John","lastName":"Doe"}`)
	do(t, h, http.MethodPost, "/records", `{"name":"Jane","lastName":"Smith"}`)

	rr := do(t, h, http.MethodGet, "/records/search?q=JA", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Jane","lastName":"Smith"}]`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/records/search?q=doe", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"John","lastName":"Doe"}]`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/records/search?q=zzz", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NO_MATCHES", errorCode(t, rr))

	for _, target := range []string{"/records/search", "/records/search?q=", "/records/search?q=%20%20"} {
		rr = do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		assert.Equal(t, "MISSING_SEARCH_TERM", errorCode(t, rr), target)
	}
}

func TestUpdate(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/records", `{"name":"John","lastName":"Doe"}`)

	rr := do(t, h, http.MethodPut, "/records/1", `{"lastName":"Dough"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Dough"}`, rr.Body.String())

	// body vacío: sin cambios
	rr = do(t, h, http.MethodPut, "/records/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Dough"}`, rr.Body.String())

	rr = do(t, h, http.MethodPut, "/records/1", `{"name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rr))

	rr = do(t, h, http.MethodPut, "/records/1", `{"name":42}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPut, "/records/7", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodPut, "/records/x", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_PARAMETER", errorCode(t, rr))

	// el record no cambió tras los fallos
	rr = do(t, h, http.MethodGet, "/records/1", "")
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Dough"}`, rr.Body.String())
}

func TestDelete(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/records", `{"name":"John","lastName":"Doe"}`)

	rr := do(t, h, http.MethodDelete, "/records/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Record deleted successfully"}`, rr.Body.String())

	rr = do(t, h, http.MethodDelete, "/records/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodDelete, "/records/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
