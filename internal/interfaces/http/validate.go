package http

import (
	"fmt"
	"regexp"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/go-playground/validator/v10"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// validate instancia compartida; las tags viven en los DTOs.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// teléfono: solo dígitos, sin signos ni espacios
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	return v
}

// validationErrors traduce los errores del validador al cuerpo 400 estructurado.
// Devuelve nil si err no viene del validador (p. ej. un tipo mal usado).
func validationErrors(err error) *dto.ValidationErrorResponse {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := &dto.ValidationErrorResponse{Errors: make([]dto.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, dto.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return fmt.Sprintf("longitud o valor mínimo: %s", fe.Param())
	case "max":
		return fmt.Sprintf("longitud o valor máximo: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "digits":
		return "solo dígitos"
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
