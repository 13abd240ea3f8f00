// Package apperrors holds the error types shared by the search engine and
// the command line, and maps them to process exit codes.
//
// Errors that carry a cause implement Unwrap, so callers test them with
// errors.Is and errors.As rather than by message.
package apperrors
