package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:generate go tool moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate go tool moq -out meal_service_mock_test.go -pkg rest . mealService

type recorderStub struct {
	registered   int
	loginSuccess int
	loginFailure int
	mealsCreated int
}

func (r *recorderStub) UserRegistered() { r.registered++ }

func (r *recorderStub) LoginAttempt(success bool) {
	if success {
		r.loginSuccess++
		return
	}
	r.loginFailure++
}

func (r *recorderStub) MealCreated() { r.mealsCreated++ }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
