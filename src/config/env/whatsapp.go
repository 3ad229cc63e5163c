package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pterm/pterm"
)

var (
	WabaID          string
	WabaAccessToken string
	WabaAccountID   string
	MetaAppSecret   string
	MetaVerifyToken string
	GraphTimeout    = 10 * time.Second
)

func loadWhatsAppEnv() {
	WabaID = os.Getenv("WABA_ID")
	WabaAccessToken = os.Getenv("WABA_ACCESS_TOKEN")
	WabaAccountID = os.Getenv("WABA_ACCOUNT_ID")
	MetaAppSecret = os.Getenv("META_APP_SECRET")
	MetaVerifyToken = os.Getenv("META_VERIFY_TOKEN")

	graphTimeoutSeconds := os.Getenv("GRAPH_API_TIMEOUT_SECONDS")
	timeoutSecToInt, err := strconv.Atoi(graphTimeoutSeconds)
	if err == nil && timeoutSecToInt > 0 {
		GraphTimeout = time.Duration(timeoutSecToInt) * time.Second
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf(
			"WhatsApp environment done with waba id %s and Graph API timeout %s",
			WabaID,
			GraphTimeout,
		),
	)
}

// whatsAppSettings gathers the variables the relay cannot run without.
type whatsAppSettings struct {
	WabaID          string `validate:"required"`
	WabaAccessToken string `validate:"required"`
	MetaVerifyToken string `validate:"required"`
}

// ValidateWhatsApp checks that the required WhatsApp variables are set.
func ValidateWhatsApp(validate *validator.Validate) error {
	return validate.Struct(&whatsAppSettings{
		WabaID:          WabaID,
		WabaAccessToken: WabaAccessToken,
		MetaVerifyToken: MetaVerifyToken,
	})
}
