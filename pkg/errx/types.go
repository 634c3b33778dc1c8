package errx

// Type represents the category of error
type Type string

const (
	// TypeInternal represents programming or wiring errors
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents input the user can correct locally
	TypeValidation Type = "VALIDATION"

	// TypeConflict represents an operation refused because of current state
	TypeConflict Type = "CONFLICT"

	// TypeExternal represents failures reported by, or while reaching, an external service
	TypeExternal Type = "EXTERNAL"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}
