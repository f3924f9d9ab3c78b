package hubic

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// authorizationStateLength is the number of random bytes in an authorization state value.
// 48 bytes give 384 bits of entropy and encode to 64 URL-safe characters.
const authorizationStateLength = 48

// newAuthorizationState generates an unguessable anti-forgery state value.
// A fresh value is generated per authentication attempt and never persisted:
// it must be echoed back verbatim by the authorization server at redirect time.
func newAuthorizationState() (string, error) {
	buf := make([]byte, authorizationStateLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate authorization state: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf), nil
}
