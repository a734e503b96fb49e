// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeConfigParse,
//	    "failed to parse cluster configuration",
//	    parseErr,
//	    map[string]interface{}{
//	        "path": cfgPath,
//	    },
//	)
package errors
