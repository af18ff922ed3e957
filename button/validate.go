package button

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type enumFields struct {
	Size    string `validate:"omitempty,oneof=large medium small"`
	Variant string `validate:"omitempty,oneof=contained elevated outlined text"`
	Role    string `validate:"omitempty,oneof=button link"`
	Type    string `validate:"omitempty,oneof=button submit reset"`
}

// Validate checks the enumerated props against their known values.
//
// Render never validates: an unknown size or variant renders the unstyled base look. Callers
// that prefer to fail fast on bad input call Validate first.
func Validate(props Props) error {
	err := validate.Struct(enumFields{
		Size:    string(props.Size),
		Variant: string(props.Variant),
		Role:    string(props.Role),
		Type:    string(props.Type),
	})
	if err != nil {
		return fmt.Errorf("invalid button props: %w", err)
	}
	return nil
}
