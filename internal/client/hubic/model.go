package hubic

// TokenBundle is the terminal artifact of a successful authentication or refresh.
// Ownership passes to the caller; the client keeps no copy.
type TokenBundle struct {
	// AccessToken is the short-lived credential used to call protected endpoints.
	AccessToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
	// RefreshToken is the long-lived credential used to obtain new access tokens.
	// It is empty on a refresh response.
	RefreshToken string
}

// StorageCredentials are the delegated OpenStack Swift credentials
// returned by the account credentials endpoint.
type StorageCredentials struct {
	// Token is the Swift authentication token.
	Token string `json:"token"`
	// Endpoint is the Swift storage endpoint URL.
	Endpoint string `json:"endpoint"`
	// Expires is the credential expiration timestamp in RFC 3339 format.
	Expires string `json:"expires"`
}

// actionDescriptor carries the state extracted from the authorization form:
// where to submit credentials, which hidden parameters to echo back,
// and the anti-forgery state generated for this attempt.
// It is produced by requestToken and consumed as-is by confirmAccess.
type actionDescriptor struct {
	// actionURL is the form submission URL, possibly relative to the authorization endpoint.
	actionURL string
	// actionParams are the hidden form parameters to echo back, in document order.
	actionParams []formPair
	// state is the anti-forgery value generated at the start of the attempt.
	state string
}

// tokenResponse is the raw JSON shape of the token endpoint response.
// ExpiresIn is a pointer so that an absent field can be told apart from zero.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    *int64 `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}
