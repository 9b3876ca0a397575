// Package booking implements the travel booking form: the field registry
// declared in booking.yaml, the asynchronous email check, the passenger
// sub-list that tracks the passenger count, the destination filter and the
// derived price.
//
// A BookingForm is safe for use from multiple goroutines. Every public method
// holds the form's lock; asynchronous email results re-enter through the
// same lock.
package booking
