// Package hubic provides a Go client for the hubiC cloud storage OAuth2 API.
// It authenticates a user by emulating a browser against the authorization
// endpoint: it requests the server-rendered authorization form, submits the
// account credentials against it, follows the resulting redirect to obtain
// an authorization code, and exchanges that code for an access/refresh
// token pair. The client also refreshes expired access tokens and fetches
// delegated OpenStack Swift storage credentials.
// Every failure is classified into a closed taxonomy separating transport
// errors, unexpected HTTP statuses, OAuth2-level denials, and malformed
// response payloads.
package hubic
