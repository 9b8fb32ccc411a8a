package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que falló la validación de struct tags.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s (%s=%s)", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s (%s)", e.Field, e.Tag)
}

var validate = validator.New()

// ValidateStruct valida los tags `validate:` de un DTO y devuelve los campos fallidos.
// Lista vacía = struct válido.
func ValidateStruct(data interface{}) []FieldError {
	var out []FieldError
	if err := validate.Struct(data); err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			out = append(out, FieldError{
				Field: ve.StructNamespace(),
				Tag:   ve.Tag(),
				Param: ve.Param(),
			})
		}
	}
	return out
}

// Describe concatena los errores de campo en un mensaje legible para ErrorResponse.
func Describe(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}
