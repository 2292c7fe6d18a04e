package core

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"skycast/internal/types"
)

// Validator wraps go-playground/validator for request DTO validation.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with struct-tag validation enabled.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateStruct validates a DTO against its struct tags and translates
// failures into a single validation AppError listing the offending fields.
func (v *Validator) ValidateStruct(dst any) error {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if ok := errorsAs(err, &verrs); !ok {
		return types.NewAppError(types.ErrCodeValidationMissingField, "invalid request", err)
	}

	fields := make([]string, 0, len(verrs))
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		details[fe.Field()] = fmt.Sprintf("failed %q validation", fe.Tag())
	}

	return &types.AppError{
		Code:    types.ErrCodeValidationMissingField,
		Message: "invalid fields: " + strings.Join(fields, ", "),
		Err:     err,
		Details: details,
	}
}

// errorsAs is a tiny indirection so the validator error unwrap stays in one
// place.
func errorsAs(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = v
	return true
}
