package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrRecordNotFound.WithDetail("id=7"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RECORD_NOT_FOUND", body["code"])
	assert.Equal(t, "Record not found", body["message"])
	assert.Equal(t, "id=7", body["detail"])
}

func TestWriteError_GenericErrorBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, stderrors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestFromError_UnwrapsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("ctx: %w", ErrMissingFields)
	assert.Same(t, ErrMissingFields, FromError(wrapped))
}

func TestWithDetail_DoesNotMutateBase(t *testing.T) {
	e := ErrValidation.WithDetail("x")
	assert.Equal(t, "x", e.Detail)
	assert.Empty(t, ErrValidation.Detail)

	cause := stderrors.New("root")
	c := ErrBadRequest.WithCause(cause)
	assert.ErrorIs(t, c, cause)
	assert.Nil(t, ErrBadRequest.Err)
}
