// Package dto holds the JSON bodies written by the HTTP adapters that have
// no domain counterpart.
package dto

import "github.com/wyc-thg/broker/internal/domain"

// ErrorResponse represents a common API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SystemcheckErrorResponse is returned when the systemcheck could not be
// performed at all.
type SystemcheckErrorResponse struct {
	OK     bool                    `json:"ok"`
	Error  string                  `json:"error"`
	Config domain.ValidationConfig `json:"config"`
}
