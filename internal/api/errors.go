// Package api provides HTTP handlers and route registration for the
// channel, schedule, media, and health endpoints.
package api

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
