// Package model defines the typed form model consumed by the form runtime.
// Builders reside in internal/model but return the types defined here.
// Validation rules expose canonical identifiers (min/max, minLength/maxLength,
// pattern, email, requiredTrue) with string parameters so the runtime can
// compile them without sacrificing deterministic JSON snapshots. Schema
// extensions under the `x-formgen` namespace carry the pieces OpenAPI has no
// keyword for: `requiredTrue`, `asyncValidators` and the property `order`.
package model
