// Package errors provides structured error handling for minigrep.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Usage errors (arguments, flags)
//   - 2XX: Configuration errors (settings file)
//   - 3XX: IO errors (input file, output stream)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryUsage indicates the command was invoked incorrectly.
	CategoryUsage Category = "USAGE"
	// CategoryConfig indicates settings-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and stream I/O errors.
	CategoryIO Category = "IO"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Usage errors (100-199)
	ErrCodeMissingQuery    = "ERR_101_MISSING_QUERY"
	ErrCodeMissingFilePath = "ERR_102_MISSING_FILE_PATH"
	ErrCodeInvalidFlag     = "ERR_103_INVALID_FLAG"

	// Config errors (200-299)
	ErrCodeSettingsInvalid    = "ERR_201_SETTINGS_INVALID"
	ErrCodeSettingsUnreadable = "ERR_202_SETTINGS_UNREADABLE"

	// IO errors (300-399)
	ErrCodeFileNotFound    = "ERR_301_FILE_NOT_FOUND"
	ErrCodeFilePermission  = "ERR_302_FILE_PERMISSION"
	ErrCodeFileRead        = "ERR_303_FILE_READ"
	ErrCodeInvalidEncoding = "ERR_304_INVALID_ENCODING"
	ErrCodeOutputWrite     = "ERR_305_OUTPUT_WRITE"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// "101" from "ERR_101_MISSING_QUERY"
	switch code[4] {
	case '1':
		return CategoryUsage
	case '2':
		return CategoryConfig
	case '3':
		return CategoryIO
	default:
		return CategoryInternal
	}
}
