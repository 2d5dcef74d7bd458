// Package errors provides the classified error primitives used across siteconf.
//
// A ClassifiedError carries a broad category (config, validation, filesystem,
// internal), a severity, and structured context. Domain packages may also
// define their own error types; implementing Categorized lets the CLI adapter
// map them to exit codes without this package knowing about them.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "read config").
//		WithContext("path", path).
//		Build()
package errors
