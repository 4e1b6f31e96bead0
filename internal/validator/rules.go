package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/utils"
)

// RegisterRules installs the domain validation tags. It is applied both to
// the wrapper instance and to gin's binding engine at startup.
func RegisterRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-cpf", validateCPF)
	mustRegister("is-perfil", validatePerfil)
	mustRegister("is-acao", validateAcao)
}

// Empty values pass; 'required' handles presence.

func validateCPF(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utils.ValidarCPF(value)
}

func validatePerfil(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return auth.ValidatePerfil(value) == nil
}

func validateAcao(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", auth.AcaoVisualizar, auth.AcaoCriar, auth.AcaoEditar, auth.AcaoExcluir:
		return true
	default:
		return false
	}
}
