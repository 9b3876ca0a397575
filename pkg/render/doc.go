// Package render turns form state into text: one error message per field,
// issue listings for a whole form, sanitised submission values and the
// booking receipt.
package render
