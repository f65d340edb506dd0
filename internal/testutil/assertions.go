package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API wire format with the data payload left raw for
// per-test decoding.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// DecodeEnvelope reads and decodes the response envelope.
func DecodeEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var env Envelope
	err = json.Unmarshal(body, &env)
	require.NoError(t, err, "failed to unmarshal envelope: %s", string(body))
	return env
}

// AssertSuccessData verifies a success envelope and decodes its data into v.
func AssertSuccessData(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	env := DecodeEnvelope(t, resp)
	require.True(t, env.Success, "expected success envelope, got: %s", env.Message)

	if v != nil {
		err := json.Unmarshal(env.Data, v)
		require.NoError(t, err, "failed to unmarshal data: %s", string(env.Data))
	}
}

// AssertErrorEnvelope verifies a failure envelope: status, message fragment,
// and the invariant that failed responses carry null data.
func AssertErrorEnvelope(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	env := DecodeEnvelope(t, resp)
	assert.False(t, env.Success, "expected failure envelope")
	assert.Equal(t, "null", string(env.Data), "error envelope must carry null data")
	if expectedMessage != "" {
		assert.Contains(t, env.Message, expectedMessage, "error message mismatch")
	}
}
