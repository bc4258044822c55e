package cli

import (
	"fmt"

	"marvin/internal/api"
)

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("✓ %s", msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return fmt.Sprintf("⚠ %s", msg)
}

// ResponseField extracts a top-level string field from a JSON response body.
// Mutating endpoints echo the stored document back; this pulls out the
// human-relevant bit (usually the title) for confirmation lines. Missing
// fields and non-JSON bodies yield an empty string.
func ResponseField(resp *api.Response, field string) string {
	var doc map[string]interface{}
	if err := resp.DecodeJSON(&doc); err != nil {
		return ""
	}
	value, _ := doc[field].(string)
	return value
}
