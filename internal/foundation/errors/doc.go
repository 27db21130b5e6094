// Package errors provides the classified error primitives used across dailyreport.
//
// Every failure a user can act on (missing template, an archive that already exists for
// today, a template section the working report lost) is surfaced as a ClassifiedError so
// the CLI can print a precise instruction and pick an exit code without string matching.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryAlreadyExists, "today's report already exists").
//		WithContext("path", archivePath).
//		UserAction().
//		Build()
package errors
