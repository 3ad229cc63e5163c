package main

import (
	_ "github.com/Astervia/wacraft-relay/src/config"
	_ "github.com/Astervia/wacraft-relay/src/server"
)

// @title						wacraft Relay API
// @version					0.1.0
// @description				Webhook relay for the WhatsApp Cloud API. Receives an image with a destination number in its caption, forwards the image to that number and confirms the delivery to the sender.
// @contact.name				Astervia Dev Team
// @contact.url				https://github.com/Astervia
// @contact.email				wacraft@astervia.tech
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @BasePath					/
// @schemes					http https
func main() {
	// Server starts via init() functions.
}
