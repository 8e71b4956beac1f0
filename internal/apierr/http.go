package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CategoryForStatus maps HTTP status codes to retry categories:
// 4xx client errors are irrecoverable except 408 and 429, 5xx server errors
// are recoverable, anything else is treated conservatively as recoverable.
func CategoryForStatus(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// FromResponse builds an *APIError for an unexpected status. The body, if it
// parses as the service's error object, supplies code/message/request id;
// otherwise only the status is reported.
func FromResponse(operation string, statusCode int, body []byte) *APIError {
	e := &APIError{
		Category:   CategoryForStatus(statusCode),
		StatusCode: statusCode,
		Underlying: fmt.Errorf("%s: unexpected status %d", operation, statusCode),
	}
	var eb struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		e.Code = eb.Code
		e.Message = eb.Message
		e.RequestID = eb.RequestID
	}
	return e
}

// NewNetworkError wraps a transport-level failure. Network errors are always
// recoverable as they may be transient.
func NewNetworkError(operation string, err error) *APIError {
	return &APIError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}
