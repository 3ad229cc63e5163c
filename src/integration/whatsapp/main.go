package whatsapp

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Astervia/wacraft-relay/src/config/env"
	bootstrap "github.com/Rfluid/whatsapp-cloud-api/src/bootstrap"
	"github.com/pterm/pterm"
)

var WabaApi bootstrap.WhatsAppAPI

// Every Graph API call shares this client, so the env timeout bounds each
// outbound round-trip.
var sharedHTTPClient *http.Client

func Load() {
	pterm.DefaultLogger.Info("Loading WhatsApp integration...")

	sharedHTTPClient = &http.Client{Timeout: env.GraphTimeout}

	version := "v24.0"
	cfg := bootstrap.SenderConfig{
		AccessToken:   env.WabaAccessToken,
		WABAID:        env.WabaID,
		WABAAccountID: env.WabaAccountID,
		Version:       &version,
	}
	wabaApi, err := bootstrap.FromConfigWithClient(cfg, sharedHTTPClient)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to generate api: %v", err),
		)
		os.Exit(1)
	}
	WabaApi = *wabaApi

	pterm.DefaultLogger.Info("WhatsApp integration loaded")
}
