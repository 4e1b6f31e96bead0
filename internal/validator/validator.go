package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator with JSON tag names and the
// domain rules from rules.go.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// DTOs carry gin "binding" tags; the wrapper must read the same ones.
	v.SetTagName("binding")

	// Error messages use the json tag name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	RegisterRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate runs struct validation and converts failures into a
// *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Mínimo de %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Valor mínimo: %s", fe.Param())
	case "max":
		return fmt.Sprintf("Valor máximo: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Deve ser um de: %s", strings.Replace(fe.Param(), " ", ", ", -1))
	case "is-cpf":
		return "CPF inválido"
	case "is-perfil":
		return "Perfil inválido"
	case "is-acao":
		return "Ação inválida"
	default:
		return fmt.Sprintf("Valor inválido (regra '%s')", fe.Tag())
	}
}
