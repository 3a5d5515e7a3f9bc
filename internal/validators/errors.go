package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrMissingField    = errors.New("required field is missing")
	ErrNotAnObject     = errors.New("field is not an object")
)
