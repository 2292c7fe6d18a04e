package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/types"
)

func TestJSON_WritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	JSON(rec, req, http.StatusCreated, APIResponse{Data: map[string]string{"id": "42"}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data": {"id": "42"}}`, rec.Body.String())
}

func TestError_AppErrorMapsStatusAndCode(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(types.WithRequestID(req.Context(), "req-9"))

	Error(rec, req, types.NewAppError(types.ErrCodeNotFoundFavourite, "favourite not found", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found_favourite", body.Error.Code)
	assert.Equal(t, "favourite not found", body.Error.Message)
	assert.Equal(t, "req-9", body.Error.RequestID)
}

func TestError_UnknownErrorBecomesGeneric500(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Error(rec, req, errors.New("pq: connection reset while writing secret dsn"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_unexpected_error")
	// Internal detail must not leak.
	assert.NotContains(t, rec.Body.String(), "dsn")
}

func TestDecodeJSON_Valid(t *testing.T) {
	var dst struct {
		Label string `json:"label"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"label":"Home"}`))

	err := DecodeJSON(httptest.NewRecorder(), req, &dst)

	require.NoError(t, err)
	assert.Equal(t, "Home", dst.Label)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Label string `json:"label"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"label":"Home","sneaky":true}`))

	err := DecodeJSON(httptest.NewRecorder(), req, &dst)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeValidationBadBody, appErr.Code)
}

func TestDecodeJSON_RejectsTrailingValues(t *testing.T) {
	var dst struct {
		Label string `json:"label"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"label":"a"}{"label":"b"}`))

	err := DecodeJSON(httptest.NewRecorder(), req, &dst)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeValidationBadBody, appErr.Code)
}

func TestDecodeJSON_RejectsMalformedBody(t *testing.T) {
	var dst struct{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))

	err := DecodeJSON(httptest.NewRecorder(), req, &dst)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeValidationBadBody, appErr.Code)
}
