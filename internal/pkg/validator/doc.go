// Package validator checks request structs against `validate` tags.
//
// Failures come back as V10ValidationError, a snake_case field to message
// map that the router renders under the "error" key.
package validator
