package classify

// ClassificationError reports arguments or input that cannot be mapped onto
// an API request. The message is the exact user-facing text; no HTTP traffic
// happens for a request that fails classification.
type ClassificationError struct {
	Message string
}

// Error implements the error interface
func (e *ClassificationError) Error() string {
	return e.Message
}
