package assessment

import "errors"

// Validation failure kinds. A *ValidationError unwraps to exactly one of these.
var (
	ErrTypeConversion = errors.New("type conversion")
	ErrNonFinite      = errors.New("non-finite value")
	ErrNegativeValue  = errors.New("negative value")
	ErrOutOfRange     = errors.New("value out of range")
	ErrEmptyValue     = errors.New("empty value")
	ErrInvalidEnum    = errors.New("invalid enum value")
)

// Field names the measurement that failed validation.
type Field string

const (
	FieldArea    Field = "area"
	FieldPain    Field = "pain"
	FieldExudate Field = "exudate"
)

// ValidationError reports the first invalid field found by Validate.
type ValidationError struct {
	Field   Field
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func fail(field Field, kind error, msg string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Message: msg}
}
