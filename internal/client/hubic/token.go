package hubic

import (
	"encoding/json"
	"fmt"
	"io"
)

// decodeTokenPayload decodes and validates a token endpoint response body.
// A body that is not valid JSON and a JSON object lacking the required
// fields are distinct failures: the former wraps the decode error, the
// latter wraps ErrInvalidTokenPayload.
// requireRefreshToken is true for the code exchange, where the server must
// issue a refresh token, and false for a refresh, where it never does.
func decodeTokenPayload(body io.Reader, requireRefreshToken bool) (*TokenBundle, error) {
	var payload tokenResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	if payload.AccessToken == "" {
		return nil, fmt.Errorf("%w: missing access_token", ErrInvalidTokenPayload)
	}

	if payload.ExpiresIn == nil {
		return nil, fmt.Errorf("%w: missing expires_in", ErrInvalidTokenPayload)
	}

	if payload.TokenType != expectedTokenType {
		return nil, fmt.Errorf("%w: token_type %q, want %q", ErrInvalidTokenPayload, payload.TokenType, expectedTokenType)
	}

	if requireRefreshToken && payload.RefreshToken == "" {
		return nil, fmt.Errorf("%w: missing refresh_token", ErrInvalidTokenPayload)
	}

	return &TokenBundle{
		AccessToken:  payload.AccessToken,
		ExpiresIn:    *payload.ExpiresIn,
		RefreshToken: payload.RefreshToken,
	}, nil
}
