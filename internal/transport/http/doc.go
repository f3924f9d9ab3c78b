// Package http holds the HTTP transport chain shared by every hubiC API call:
// debug-level request/response logging and User-Agent injection, composed as
// nested http.RoundTrippers.
package http
