package hubic

import "errors"

// Static error definitions for better error handling.
// Together they form the closed failure taxonomy of the authentication flow:
// unexpected HTTP status, protocol-level OAuth2 denial, state forgery,
// malformed HTML, malformed redirect, and malformed token payload.
// Transport failures surface as wrapped errors from the HTTP client.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrOAuth2Denied indicates the authorization server rejected the login or denied the scope.
	ErrOAuth2Denied = errors.New("authorization server returned an error")
	// ErrStateMismatch indicates the state echoed by the server differs from the generated one.
	// This is a security-relevant failure: the redirect cannot be correlated with our request.
	ErrStateMismatch = errors.New("authorization state mismatch")
	// ErrFormNotFound indicates the authorization page contains no form element.
	ErrFormNotFound = errors.New("authorization form not found")
	// ErrMultipleForms indicates the authorization page contains more than one form element.
	ErrMultipleForms = errors.New("more than one authorization form found")
	// ErrFormActionMissing indicates the authorization form has no action attribute.
	ErrFormActionMissing = errors.New("authorization form has no action attribute")
	// ErrInputNotFound indicates the expected input element is absent from the form.
	ErrInputNotFound = errors.New("form input not found")
	// ErrMultipleInputs indicates more than one input element matched the expected name.
	ErrMultipleInputs = errors.New("more than one matching form input found")
	// ErrLocationMissing indicates the redirect response carries no Location header.
	ErrLocationMissing = errors.New("redirect response has no Location header")
	// ErrAuthCodeMissing indicates the redirect location carries no authorization code.
	ErrAuthCodeMissing = errors.New("redirect location has no code parameter")
	// ErrAuthStateMissing indicates the redirect location carries no state parameter.
	ErrAuthStateMissing = errors.New("redirect location has no state parameter")
	// ErrInvalidTokenPayload indicates the token response lacked required fields or values.
	ErrInvalidTokenPayload = errors.New("invalid token payload")
)
