package config

import (
	"fmt"
	"os"

	"github.com/Astervia/wacraft-relay/src/config/env"
	"github.com/Astervia/wacraft-relay/src/integration/whatsapp"
	"github.com/Astervia/wacraft-relay/src/validators"
	"github.com/pterm/pterm"
)

func init() {
	validators.InitValidators()

	if err := env.ValidateWhatsApp(validators.Validator()); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Missing required WhatsApp environment variables: %v", err),
		)
		os.Exit(1)
	}

	whatsapp.Load()
}
