package webhook_handler

import (
	"fmt"

	relay_model "github.com/Astervia/wacraft-relay/src/relay/model"
	relay_service "github.com/Astervia/wacraft-relay/src/relay/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// MessageWebhook serves the two entry points Meta calls: the verification
// handshake and the event delivery.
type MessageWebhook struct {
	relay       *relay_service.Relay
	verifyToken string
}

func NewMessageWebhook(relay *relay_service.Relay, verifyToken string) *MessageWebhook {
	return &MessageWebhook{relay: relay, verifyToken: verifyToken}
}

// Verify answers the webhook verification handshake.
//
//	@Summary		Verify webhook endpoint
//	@Description	Used by Meta to verify the validity of the webhook endpoint. Echoes hub.challenge when the mode and token match.
//	@Tags			Webhook In
//	@Produce		plain
//	@Param			hub.mode			query		string	true	"Subscription mode (should be 'subscribe')"
//	@Param			hub.challenge		query		string	true	"Challenge token returned by the endpoint"
//	@Param			hub.verify_token	query		string	true	"Verification token defined in Meta dashboard"
//	@Success		200					{string}	string	"hub.challenge echoed back"
//	@Failure		403					{string}	string	"Forbidden"
//	@Router			/webhook [get]
func (h *MessageWebhook) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")

	if mode == "subscribe" && token == h.verifyToken {
		return c.Status(fiber.StatusOK).SendString(c.Query("hub.challenge"))
	}

	pterm.DefaultLogger.Warn("Webhook verification failed")
	return c.Status(fiber.StatusForbidden).SendString("Forbidden")
}

// Receive handles incoming webhook events from WhatsApp Cloud API.
//
//	@Summary		Handle webhook events
//	@Description	Relays the first inbound message of the event. Always acknowledges with 200 so Meta does not redeliver the event.
//	@Tags			Webhook In
//	@Accept			json
//	@Produce		json
//	@Param			input	body		relay_model.WebhookBody	true	"Content sent by WhatsApp Cloud API"
//	@Success		200		{object}	relay_model.Ack			"Event acknowledged"
//	@Router			/webhook [post]
func (h *MessageWebhook) Receive(c *fiber.Ctx) error {
	h.process(c)
	return c.Status(fiber.StatusOK).JSON(relay_model.Ack{OK: true})
}

// process never bubbles an error up: every failure is logged server-side
// and the event is acknowledged anyway.
func (h *MessageWebhook) process(c *fiber.Ctx) {
	defer func() {
		if rec := recover(); rec != nil {
			pterm.DefaultLogger.Error(
				fmt.Sprintf("Recovered while processing webhook event: %v", rec),
			)
		}
	}()

	var body relay_model.WebhookBody
	if err := c.BodyParser(&body); err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Ignoring unparseable webhook body: %v", err),
		)
		return
	}

	// Delivery/status callbacks carry no messages field.
	msg, ok := body.FirstMessage()
	if !ok {
		return
	}

	if err := h.relay.Forward(msg); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Error relaying message from %s: %v", msg.From, err),
		)
	}
}
