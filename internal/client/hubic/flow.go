package hubic

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"golang.org/x/net/html"

	"github.com/savrasov/hubic-agent/internal/logger"
)

// Authenticate performs the full browser-emulating authorization code flow:
// request the authorization form, submit the account credentials against it,
// and exchange the resulting code for a token bundle.
// The steps are strictly sequential and the first failure short-circuits the
// rest; a state echo that does not match the generated value is rejected
// before the code exchange even when a code was returned.
func (c *ClientImpl) Authenticate(ctx context.Context, login, password string) (*TokenBundle, error) {
	flowID := uuid.NewString()

	logger.DebugKV(ctx, "Starting authorization flow", "flow_id", flowID, "login", login)

	action, err := c.requestToken(ctx)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Authorization form obtained", "flow_id", flowID, "action_url", action.actionURL)

	code, echoedState, err := c.confirmAccess(ctx, action, login, password)
	if err != nil {
		return nil, err
	}

	if echoedState != action.state {
		return nil, ErrStateMismatch
	}

	logger.DebugKV(ctx, "Access confirmed, exchanging code", "flow_id", flowID)

	bundle, err := c.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Authorization flow complete", "flow_id", flowID, "expires_in", bundle.ExpiresIn)

	return bundle, nil
}

// RefreshToken obtains a new access token using a previously issued refresh token.
// The response shape matches the code exchange except that no new refresh token is issued.
func (c *ClientImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenBundle, error) {
	body := encodeForm([]formPair{
		{key: "refresh_token", value: refreshToken},
		{key: "grant_type", value: grantTypeRefreshToken},
	})

	return c.requestTokenEndpoint(ctx, body, false)
}

// requestToken fetches the authorization form and extracts the submission
// target together with the hidden anti-forgery parameter.
func (c *ClientImpl) requestToken(ctx context.Context) (*actionDescriptor, error) {
	state, err := newAuthorizationState()
	if err != nil {
		return nil, err
	}

	route, err := url.JoinPath(c.baseURL, hubicOAuthAuthURI)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.URL.RawQuery = string(encodeForm([]formPair{
		{key: "client_id", value: c.cfg.ClientID},
		{key: "redirect_uri", value: c.cfg.RedirectURI},
		{key: "scope", value: oauthScope},
		{key: "state", value: state},
		{key: "response_type", value: oauthResponseType},
	}))

	setFlowHeaders(request)

	response, err := c.flowClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	doc, err := html.Parse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization page: %w", err)
	}

	actionURL, err := findSingleForm(doc)
	if err != nil {
		return nil, err
	}

	oauthValue, err := findSingleNamedInput(doc, oauthInputName)
	if err != nil {
		return nil, err
	}

	return &actionDescriptor{
		actionURL:    actionURL,
		actionParams: []formPair{{key: oauthInputName, value: oauthValue}},
		state:        state,
	}, nil
}

// confirmAccess submits the account credentials against the authorization
// form and extracts the authorization code and echoed state from the
// resulting redirect.
func (c *ClientImpl) confirmAccess(
	ctx context.Context,
	action *actionDescriptor,
	login, password string,
) (code, state string, err error) {
	route, err := c.resolveActionURL(action.actionURL)
	if err != nil {
		return "", "", err
	}

	pairs := make([]formPair, 0, len(action.actionParams)+4)
	pairs = append(pairs, action.actionParams...)
	pairs = append(pairs,
		formPair{key: "credentials", value: "r"},
		formPair{key: "login", value: login},
		formPair{key: "user_pwd", value: password},
		formPair{key: "action", value: "accepted"},
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(encodeForm(pairs)))
	if err != nil {
		return "", "", err
	}

	setFlowHeaders(request)

	response, err := c.flowClient.Do(request)
	if err != nil {
		return "", "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusFound {
		return "", "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	location := response.Header.Get("Location")
	if location == "" {
		return "", "", ErrLocationMissing
	}

	return parseRedirectLocation(location)
}

// parseRedirectLocation extracts the authorization code and echoed state
// from a redirect location. An error parameter means the server rejected
// the login or denied the scope.
func parseRedirectLocation(location string) (code, state string, err error) {
	locationURL, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse redirect location: %w", err)
	}

	pairs, err := decodeQuery(locationURL.RawQuery)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse redirect location: %w", err)
	}

	if oauthError, found := firstPairValue(pairs, "error"); found {
		return "", "", fmt.Errorf("%w: %s", ErrOAuth2Denied, oauthError)
	}

	code, found := firstPairValue(pairs, "code")
	if !found {
		return "", "", ErrAuthCodeMissing
	}

	state, found = firstPairValue(pairs, "state")
	if !found {
		return "", "", ErrAuthStateMissing
	}

	return code, state, nil
}

// exchangeCode exchanges a single-use authorization code for a token bundle.
func (c *ClientImpl) exchangeCode(ctx context.Context, code string) (*TokenBundle, error) {
	body := encodeForm([]formPair{
		{key: "code", value: code},
		{key: "redirect_uri", value: c.cfg.RedirectURI},
		{key: "grant_type", value: grantTypeAuthorizationCode},
	})

	return c.requestTokenEndpoint(ctx, body, true)
}

// requestTokenEndpoint posts a form body to the token endpoint under HTTP
// Basic authentication and validates the JSON payload of the response.
func (c *ClientImpl) requestTokenEndpoint(
	ctx context.Context,
	body []byte,
	requireRefreshToken bool,
) (*TokenBundle, error) {
	route, err := url.JoinPath(c.baseURL, hubicOAuthTokenURI)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	setFlowHeaders(request)
	request.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	response, err := c.flowClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return decodeTokenPayload(response.Body, requireRefreshToken)
}

// resolveActionURL resolves a possibly relative form action against the API base URL.
func (c *ClientImpl) resolveActionURL(action string) (string, error) {
	actionURL, err := url.Parse(action)
	if err != nil {
		return "", fmt.Errorf("failed to parse form action URL: %w", err)
	}

	if actionURL.IsAbs() {
		return actionURL.String(), nil
	}

	baseURL, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid host URL: %w", err)
	}

	return baseURL.ResolveReference(actionURL).String(), nil
}

// setFlowHeaders applies the fixed header set every authentication flow request carries.
func setFlowHeaders(request *http.Request) {
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Connection", "Close")
	request.Header.Set("Cache-Control", "no-cache, must-revalidate")
	request.Close = true
}
