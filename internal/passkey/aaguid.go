package passkey

import (
	"encoding/base64"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

type attestationEnvelope struct {
	Response struct {
		AttestationObject string `json:"attestationObject"`
	} `json:"response"`
}

type attestationObjectCBOR struct {
	AuthData []byte `cbor:"authData"`
}

// extractAAGUID independently re-derives the AAGUID from the client's raw
// registration response rather than trusting the verification library's
// parsed view of it: it walks the attestationObject itself, decoding just
// enough CBOR to reach the authData byte string, then slices bytes [37:53)
// — the fixed AAGUID position inside attested credential data. Any failure
// along the way yields the nil UUID; it is not fatal to registration.
func extractAAGUID(rawResponse []byte) uuid.UUID {
	var env attestationEnvelope
	if err := json.Unmarshal(rawResponse, &env); err != nil {
		return uuid.Nil
	}

	attObj, err := base64.RawURLEncoding.DecodeString(env.Response.AttestationObject)
	if err != nil {
		return uuid.Nil
	}

	var decoded attestationObjectCBOR
	if err := cbor.Unmarshal(attObj, &decoded); err != nil {
		return uuid.Nil
	}

	if len(decoded.AuthData) < 53 {
		return uuid.Nil
	}

	id, err := uuid.FromBytes(decoded.AuthData[37:53])
	if err != nil {
		return uuid.Nil
	}
	return id
}
