package validators

import (
	validators "github.com/Rfluid/whatsapp-cloud-api/src/validators"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// InitValidators builds the shared validator instance and registers the
// WhatsApp Cloud API custom validators on it. Must run before any
// Validator() call.
func InitValidators() {
	validate = validator.New()

	validators.RegisterAllValidators(validate)
}

// Validator exposes the shared instance for config and handlers.
func Validator() *validator.Validate {
	return validate
}
