// Package form is a small reactive-forms runtime: Controls hold a value plus
// its validation state, Groups and Arrays aggregate them, and every node
// publishes value and status changes to its subscribers.
//
// A form tree is single-threaded. Asynchronous validators resolve on their
// own goroutine and re-enter the tree through the root Group's Dispatcher,
// which owners point at whatever serialises access to the tree (typically a
// mutex they already hold for every other call).
//
// Status follows the usual reactive-forms rules: a Control is INVALID when any
// rule fails, PENDING while an asynchronous validator is in flight, VALID
// otherwise. Groups and Arrays are PENDING when any child is pending, else
// INVALID when any child is invalid.
package form
