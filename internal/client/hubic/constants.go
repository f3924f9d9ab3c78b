package hubic

const (
	// hubicOAuthAuthURI is the URI path for the authorization form endpoint.
	hubicOAuthAuthURI = "oauth/auth/"
	// hubicOAuthTokenURI is the URI path for the token endpoint.
	hubicOAuthTokenURI = "oauth/token/"
	// hubicCredentialsURI is the URI path for the delegated storage credentials endpoint.
	hubicCredentialsURI = "1.0/account/credentials"
)

const (
	// oauthScope is the fixed scope requested from the authorization endpoint.
	oauthScope = "credentials.r"
	// oauthResponseType is the response type requested from the authorization endpoint.
	oauthResponseType = "code"
	// oauthInputName is the name of the hidden anti-forgery input on the authorization form.
	oauthInputName = "oauth"
	// expectedTokenType is the only token type the token endpoint is allowed to return.
	expectedTokenType = "Bearer"
)

const (
	// grantTypeAuthorizationCode is the grant type for exchanging an authorization code.
	grantTypeAuthorizationCode = "authorization_code"
	// grantTypeRefreshToken is the grant type for refreshing an access token.
	grantTypeRefreshToken = "refresh_token"
)

// credentialsCacheSize defines the maximum number of storage credentials entries to cache.
// One entry per live access token, so a handful is plenty.
const credentialsCacheSize = 16
