package passkey

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureResponse(t *testing.T, authData []byte) []byte {
	t.Helper()

	attObj, err := cbor.Marshal(attestationObjectCBOR{AuthData: authData})
	require.NoError(t, err)

	env := attestationEnvelope{}
	env.Response.AttestationObject = base64.RawURLEncoding.EncodeToString(attObj)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	return raw
}

func TestExtractAAGUIDFromWellFormedAuthData(t *testing.T) {
	want := uuid.New()

	authData := make([]byte, 53)
	copy(authData[37:53], want[:])

	got := extractAAGUID(fixtureResponse(t, authData))
	assert.Equal(t, want, got)
}

func TestExtractAAGUIDTooShortIsNil(t *testing.T) {
	authData := make([]byte, 40)
	got := extractAAGUID(fixtureResponse(t, authData))
	assert.Equal(t, uuid.Nil, got)
}

func TestExtractAAGUIDMalformedJSONIsNil(t *testing.T) {
	got := extractAAGUID([]byte("not json"))
	assert.Equal(t, uuid.Nil, got)
}

func TestExtractAAGUIDMalformedBase64IsNil(t *testing.T) {
	env := attestationEnvelope{}
	env.Response.AttestationObject = "%%not-base64%%"
	raw, err := json.Marshal(env)
	require.NoError(t, err)

	got := extractAAGUID(raw)
	assert.Equal(t, uuid.Nil, got)
}
