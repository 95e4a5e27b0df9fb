// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential missing, rejected by the backend, or expired. The gateway
	// clears the session before returning this.
	ErrUnauthorized = errors.New("unauthorized")

	// Transport-level failure: no response or a malformed one.
	ErrUnavailable = errors.New("server unavailable")

	// Client-side schema rejection; nothing was sent over the network.
	ErrValidation = errors.New("validation failed")

	// Upload staging errors.
	ErrFileTooLarge  = errors.New("file exceeds maximum upload size")
	ErrNothingStaged = errors.New("no file staged for upload")
	ErrUploadPending = errors.New("upload already in progress")
)
