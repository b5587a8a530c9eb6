package errs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEnumValueIsInvalid = errors.New("enum value is invalid")

// EnumValueIsInvalidError reports a literal that is not a member of a closed
// set of values. Allowed keeps declaration order so messages are stable.
type EnumValueIsInvalidError struct {
	TypeName string
	Value    string
	Allowed  []string
}

func NewEnumValueIsInvalidError(typeName, value string, allowed []string) *EnumValueIsInvalidError {
	return &EnumValueIsInvalidError{
		TypeName: typeName,
		Value:    value,
		Allowed:  allowed,
	}
}

func (e *EnumValueIsInvalidError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for type %s. Allowed values: %s",
		sanitize(e.Value), e.TypeName, strings.Join(e.Allowed, ", "))
}

func (e *EnumValueIsInvalidError) Unwrap() error {
	return ErrEnumValueIsInvalid
}
