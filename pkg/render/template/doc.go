// Package template defines the engine-agnostic seam the receipt renderer
// depends on. The pongo subpackage provides the pongo2-backed engine.
package template
