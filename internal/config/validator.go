// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` after the derivation
// pipeline finishes.  Any tag mismatch aborts startup, ensuring the binary
// never runs with partial, malformed, or missing configuration.
//
// The rules in play are `required` on identity and connection fields plus
// range checks on ports and the numeric tuning knobs.  Custom rules can be
// registered here as the configuration surface grows.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(s *Settings) error {
	return v.Struct(s)
}
