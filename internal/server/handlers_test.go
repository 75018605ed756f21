package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letter-engine/internal/common/config"
	"letter-engine/internal/common/errors"
	"letter-engine/internal/common/logger"
	"letter-engine/internal/letter/engine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "letter-engine",
			Version:     "test",
			Environment: "test",
		},
		Letter: config.LetterConfig{AdditionalDetailsMaxLength: 500},
	}
	log := logger.NewNoOpLogger()
	eng := engine.New(log, engine.WithClock(func() time.Time {
		return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	}))
	return New(cfg, log, eng, nil)
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func generatePayload() map[string]interface{} {
	return map[string]interface{}{
		"letterType": "BANK_DISPUTE",
		"reason":     "UNAUTHORIZED",
		"identity": map[string]interface{}{
			"fullName": "Jane Doe",
			"email":    "jane@x.com",
		},
		"transaction": map[string]interface{}{
			"merchantName":      "Acme Co",
			"transactionAmount": "19.99",
		},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *errors.StandardError {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHandleGenerate_Success(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", generatePayload())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		LetterType        string `json:"letterType"`
		Letter            string `json:"letter"`
		SuggestedFilename string `json:"suggestedFilename"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BANK_DISPUTE", resp.LetterType)
	assert.Equal(t, "dispute-letter-acme-co.txt", resp.SuggestedFilename)
	assert.Contains(t, resp.Letter, "March 14, 2026")
	assert.Contains(t, resp.Letter, "Fair Credit Billing Act")
}

func TestHandleGenerate_MissingFieldReturns400(t *testing.T) {
	s := newTestServer(t)

	payload := generatePayload()
	payload["identity"] = map[string]interface{}{"fullName": "Jane Doe"}

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	stdErr := decodeError(t, rec)
	assert.Equal(t, errors.ErrCodeMissingRequiredField, stdErr.Code)
	assert.Equal(t, "email", stdErr.Field)
}

func TestHandleGenerate_AdditionalDetailsOverCap(t *testing.T) {
	s := newTestServer(t)

	payload := generatePayload()
	payload["additional"] = map[string]interface{}{
		"additionalDetails": strings.Repeat("x", 501),
	}

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeSchemaValidationFailed, decodeError(t, rec).Code)
}

func TestHandleGenerate_AdditionalDetailsAtCap(t *testing.T) {
	s := newTestServer(t)

	payload := generatePayload()
	payload["additional"] = map[string]interface{}{
		"additionalDetails": strings.Repeat("x", 500),
	}

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", payload)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleGenerate_UnknownTypeBypassesSchema(t *testing.T) {
	s := newTestServer(t)

	payload := generatePayload()
	payload["letterType"] = "SMALL_CLAIMS"

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeInvalidLetterType, decodeError(t, rec).Code)
}

func TestHandleGenerate_UnknownWireFieldRejected(t *testing.T) {
	s := newTestServer(t)

	payload := generatePayload()
	payload["html"] = true

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeSchemaValidationFailed, decodeError(t, rec).Code)
}

func TestHandleGenerate_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/letters", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeSchemaValidationFailed, decodeError(t, rec).Code)
}

func TestHandleGenerate_ReasonMismatch(t *testing.T) {
	s := newTestServer(t)

	payload := generatePayload()
	payload["reason"] = "DEFECTIVE"

	rec := doRequest(t, s, http.MethodPost, "/api/v1/letters", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeReasonTypeMismatch, decodeError(t, rec).Code)
}

func TestHandleListTypes(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/letter-types", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		LetterTypes []struct {
			Key            string   `json:"key"`
			Name           string   `json:"name"`
			Icon           string   `json:"icon"`
			RequiredFields []string `json:"requiredFields"`
			ReasonCatalog  string   `json:"reasonCatalog"`
		} `json:"letterTypes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.LetterTypes, 2)

	assert.Equal(t, "BANK_DISPUTE", resp.LetterTypes[0].Key)
	assert.Equal(t, "MERCHANT_REFUND", resp.LetterTypes[1].Key)
	assert.Equal(t, []string{"fullName", "email", "merchantName"}, resp.LetterTypes[0].RequiredFields)
	assert.Equal(t, "dispute_reasons", resp.LetterTypes[0].ReasonCatalog)
	assert.Equal(t, "refund_reasons", resp.LetterTypes[1].ReasonCatalog)
}

func TestHandleListReasons(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/letter-types/MERCHANT_REFUND/reasons", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Catalog string `json:"catalog"`
		Reasons []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "refund_reasons", resp.Catalog)
	require.NotEmpty(t, resp.Reasons)
	assert.Equal(t, "DEFECTIVE", resp.Reasons[0].Key)
}

func TestHandleListReasons_UnknownType(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/letter-types/SMALL_CLAIMS/reasons", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeInvalidLetterType, decodeError(t, rec).Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "letter-engine", resp["service"])
}
