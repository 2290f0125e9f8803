package validator

// Validator validates a struct.
type Validator interface {
	Validate(data any) error
}
