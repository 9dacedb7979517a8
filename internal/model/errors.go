package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPatch   = errors.New("no fields to update")
	ErrInvalidField = errors.New("invalid field")
)

func invalidField(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidField, field, reason)
}
