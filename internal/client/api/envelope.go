package api

import (
	"encoding/json"
	"fmt"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

// Envelope is the backend's uniform response wrapper. Data stays raw until
// the caller names a target type.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode string          `json:"statusCode"`
}

// ok reports whether the envelope carries a business success.
func (e *Envelope) ok() bool {
	if !e.Success {
		return false
	}
	return e.StatusCode == "" || e.StatusCode == common.StatusCodeOK
}

// BusinessError is a failure the backend reported inside a transport-level
// success: the envelope's flag was false or its status code non-OK.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (code %s)", e.Code)
}
