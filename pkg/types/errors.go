package types

import "errors"

// Validation and lookup errors. Commands match these with errors.Is at the
// command boundary and report them as one-line messages.
var (
	ErrRequiredField   = errors.New("required field must not be empty")
	ErrFieldFormat     = errors.New("field format is invalid")
	ErrContactNotFound = errors.New("contact not found")
	ErrPhoneNotFound   = errors.New("phone number not found")
	ErrArgumentCount   = errors.New("wrong number of arguments")
	ErrInvalidData     = errors.New("invalid entity data")
)
