package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxBodySize limits how much of a response body is read.
const maxBodySize = 5 << 20

// ErrUnauthorized matches any 401 response.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}

// errorBody covers both the API's {"detail": ...} and {"error": ...} shapes.
// FastAPI validation errors send detail as a list of objects.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

func newStatusError(code int, data []byte) *StatusError {
	return &StatusError{Code: code, Message: errorMessage(code, data)}
}

// errorMessage extracts a human-readable message from an error body.
func errorMessage(code int, data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if len(body.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(body.Detail, &detail); err == nil && detail != "" {
				return detail
			}
			var details []struct {
				Msg string `json:"msg"`
			}
			if err := json.Unmarshal(body.Detail, &details); err == nil {
				msgs := make([]string, 0, len(details))
				for _, d := range details {
					if d.Msg != "" {
						msgs = append(msgs, d.Msg)
					}
				}
				if len(msgs) > 0 {
					return strings.Join(msgs, "; ")
				}
			}
		}
	}
	return strings.ToLower(http.StatusText(code))
}
