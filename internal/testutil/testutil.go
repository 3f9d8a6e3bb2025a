// Package testutil holds helpers shared by HTTP tests.
package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anirex/internal/platform/crypto"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response body.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Token issues an access token valid for an hour.
func Token(t *testing.T, secret, userID, name string) string {
	t.Helper()
	token, _, err := crypto.GenerateToken(secret, userID, "USER", name, time.Hour)
	require.NoError(t, err)
	return token
}

// ExpiredToken issues a correctly signed token that expired an hour ago.
func ExpiredToken(t *testing.T, secret, userID string) string {
	t.Helper()
	c := crypto.Claims{
		Sub:  userID,
		Role: "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired-jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// NewRequest builds a request with body encoded as JSON when non-nil.
func NewRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest(method, path, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// WithBearer sets the Authorization header when token is not empty.
func WithBearer(r *http.Request, token string) *http.Request {
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// DecodeEnvelope parses the recorded body, and data into out when given.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, out any) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
