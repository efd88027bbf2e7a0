package kitchenapi

import "fmt"

// APIError carries the kitchen API's own error message, verbatim. The
// admin pages show Message to the user without rewording it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("kitchen api: HTTP %d", e.StatusCode)
}
