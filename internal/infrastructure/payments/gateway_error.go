package payments

import "fmt"

// GatewayError carries the upstream status code and body for any non-success
// provider response, or the transport error when the call never completed.
// Handlers map every GatewayError to HTTP 500; the caller is not told apart
// "upstream down" from "upstream rejected".
type GatewayError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pix provider request failed: %v", e.Err)
	}
	return fmt.Sprintf("pix provider returned status %d: %s", e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
