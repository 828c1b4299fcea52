package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httperrors "github.com/dropDatabas3/recordsvc/internal/http/errors"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rr.Body.String())
}

func TestReadBody(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		raw, err := ReadBody(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(raw))
	})

	t.Run("no content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		_, err := ReadBody(httptest.NewRecorder(), req)
		require.NoError(t, err)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`name=x`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := ReadBody(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, httperrors.ErrUnsupportedMediaType)
	})

	t.Run("too large", func(t *testing.T) {
		big := `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		_, err := ReadBody(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, httperrors.ErrBodyTooLarge)
	})
}
