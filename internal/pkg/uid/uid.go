// Package uid generates identifiers for rows, tokens and correlation ids.
package uid

// NumberID generates sortable 64-bit ids.
type NumberID interface {
	Generate() int64
}

// StringID generates opaque string ids.
type StringID interface {
	Generate() string
}
