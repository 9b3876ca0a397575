// Package openapi exposes the public contracts for loading the OpenAPI document
// that declares the booking form's fields and rules. Implementations live under
// internal/openapi so kin-openapi types never leak to consumers; the booking
// package only ever sees the Document, Operation and Schema wrappers below.
package openapi
