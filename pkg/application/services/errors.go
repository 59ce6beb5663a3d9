package services

import "fmt"

// ConfigError is a fatal request configuration problem: an empty roster, a
// missing table, or a duplicate package key. The request is aborted with no
// partial result.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// InconsistencyError is an internal defect: a solved variable referencing a
// package absent from the joined catalog
type InconsistencyError struct {
	Variable           string
	PackageDescription string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf(
		"internal inconsistency: solved variable %q references unknown package %q",
		e.Variable, e.PackageDescription,
	)
}
