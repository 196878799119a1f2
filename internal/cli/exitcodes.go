package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unparsable ids or numbers,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitValidation indicates a validation error.
	// Use for: Empty names, non-positive amounts or hours,
	// or any case where input fails service validation rules.
	ExitValidation = 5
)
