// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeDataIntegrity,
//	    "failed to build ingredient catalog",
//	    cause,
//	    map[string]interface{}{
//	        "ingredient": id,
//	        "source": "data/ingredients.yaml",
//	    },
//	)
package errors
