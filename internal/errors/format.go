package errors

import (
	"fmt"
	"strings"
)

// FormatForCLI formats an error for terminal display on stderr.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	ge, ok := As(err)
	if !ok {
		ge = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", ge.Message))
	if ge.Cause != nil && ge.Cause.Error() != ge.Message {
		sb.WriteString(fmt.Sprintf("  Cause: %s\n", ge.Cause))
	}
	if ge.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", ge.Suggestion))
	}
	sb.WriteString(fmt.Sprintf("  Code: %s\n", ge.Code))

	return sb.String()
}

// FormatForLog returns slog-friendly key/value pairs for an error.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	ge, ok := As(err)
	if !ok {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error_code", ge.Code,
		"message", ge.Message,
		"category", string(ge.Category),
	}
	if ge.Cause != nil {
		attrs = append(attrs, "cause", ge.Cause.Error())
	}
	for k, v := range ge.Details {
		attrs = append(attrs, "detail_"+k, v)
	}

	return attrs
}
