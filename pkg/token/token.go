package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformed indicates the token does not split into exactly three
// dot-separated segments.
var ErrMalformed = errors.New("Invalid JWT format")

// DecodeError wraps a failure to base64-decode or JSON-parse a segment of a
// structurally valid token.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Error decoding JWT: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Pad restores the '=' padding that the compact JWT serialization strips
// from a base64url segment. Segments whose length is already a multiple of
// four are returned unchanged.
func Pad(segment string) string {
	if r := len(segment) % 4; r != 0 {
		return segment + strings.Repeat("=", 4-r)
	}
	return segment
}

// DecodeSegment decodes a single base64url token segment, tolerating
// missing padding.
func DecodeSegment(segment string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(Pad(segment))
}

// DecodePayload decodes the payload (second) segment of a token and parses
// it as JSON. The signature is not verified and no claims are validated.
//
// A token without exactly three segments fails with ErrMalformed before any
// decoding is attempted. Any base64 or JSON failure on the payload segment
// is returned as a *DecodeError carrying the underlying cause. The header
// and signature segments are not interpreted.
func DecodePayload(token string) (interface{}, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}

	raw, err := DecodeSegment(parts[1])
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return payload, nil
}

// Parsed represents a token whose header and claims have been decoded
// without signature verification.
type Parsed struct {
	header map[string]interface{}
	claims map[string]interface{}
}

func unmarshalSegment(segment string) (map[string]interface{}, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}

	var res map[string]interface{}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}

	return res, nil
}

// Parse decodes the header and payload segments of a token into maps.
// Unlike DecodePayload it requires the payload to be a JSON object, so that
// individual claims can be read through the accessors.
func Parse(token string) (*Parsed, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}

	header, err := unmarshalSegment(parts[0])
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}
	claims, err := unmarshalSegment(parts[1])
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return &Parsed{header: header, claims: claims}, nil
}

// Header returns the decoded header segment.
func (p Parsed) Header() map[string]interface{} {
	return p.header
}

// Claims returns the decoded payload segment.
func (p Parsed) Claims() map[string]interface{} {
	return p.claims
}

// Alg returns the signing algorithm from the header.
func (p Parsed) Alg() string {
	alg, _ := p.header["alg"].(string)
	return alg
}

// Kid returns the key ID from the header.
func (p Parsed) Kid() string {
	kid, _ := p.header["kid"].(string)
	return kid
}

// Sub returns the subject claim.
func (p Parsed) Sub() string {
	sub, _ := p.claims["sub"].(string)
	return sub
}

// IAT returns the issued-at time, or the zero time if the claim is absent.
func (p Parsed) IAT() time.Time {
	iat, ok := p.claims["iat"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(iat), 0)
}

// Exp returns the expiration time, or the zero time if the claim is absent.
// No expiry check is performed; callers inspecting tokens decide what to do
// with the value.
func (p Parsed) Exp() time.Time {
	exp, ok := p.claims["exp"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(exp), 0)
}
