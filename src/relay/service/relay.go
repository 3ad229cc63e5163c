package relay_service

import (
	"fmt"

	relay_model "github.com/Astervia/wacraft-relay/src/relay/model"
	"github.com/pterm/pterm"
)

// Courier is the outbound side of the relay: the five Graph API operations
// one forwarded image needs.
type Courier interface {
	SendText(to, body string) error
	SendImage(to, mediaID string) error
	ResolveMediaURL(mediaID string) (string, error)
	DownloadMedia(mediaURL string) ([]byte, error)
	UploadMedia(filename string, data []byte, mimeType string) (string, error)
}

// Re-uploaded media is always published under this name and type, matching
// what the platform accepts for image messages.
const (
	uploadFilename = "image.jpg"
	uploadMimeType = "image/jpeg"
)

// User-facing chat messages. The relay serves Chilean numbers, so guidance
// stays in Spanish.
const (
	msgImageRequired   = "❌ Debes enviar una IMAGEN junto al número de destino.\nEjemplo: 56912345678"
	msgCaptionRequired = "❌ Debes enviar el NÚMERO de destino junto a la imagen.\nEjemplo: 56912345678"
	msgInvalidFormat   = "❌ Formato inválido.\nUsa solo: 569XXXXXXXX (11 dígitos)"
	msgDownloadError   = "❌ Error al procesar la imagen."
	msgUploadError     = "❌ Error al subir la imagen."
)

func confirmationMessage(destination string) string {
	return fmt.Sprintf("✅ Imagen enviada correctamente a %s", destination)
}

// Relay forwards an inbound image to the number in its caption.
type Relay struct {
	courier Courier
}

func NewRelay(courier Courier) *Relay {
	return &Relay{courier: courier}
}

// Forward runs the whole pipeline for one inbound message. Missing input
// and bad destinations answer the sender with guidance and stop; outbound
// failures on download or upload answer with a generic error and stop. The
// returned error is for server-side logging only — callers acknowledge the
// event regardless.
func (r *Relay) Forward(msg relay_model.Message) error {
	sender := msg.From

	if msg.Image == nil {
		return r.courier.SendText(sender, msgImageRequired)
	}

	caption := msg.Caption()
	if caption == "" {
		return r.courier.SendText(sender, msgCaptionRequired)
	}

	destination := ExtractDestination(caption)
	if destination == "" {
		return r.courier.SendText(sender, msgInvalidFormat)
	}

	imageBytes, err := r.downloadImage(msg.Image.ID)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to download media %s: %v", msg.Image.ID, err),
		)
		if sendErr := r.courier.SendText(sender, msgDownloadError); sendErr != nil {
			return sendErr
		}
		return err
	}

	mediaID, err := r.courier.UploadMedia(uploadFilename, imageBytes, uploadMimeType)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to upload media for %s: %v", sender, err),
		)
		if sendErr := r.courier.SendText(sender, msgUploadError); sendErr != nil {
			return sendErr
		}
		return err
	}

	if err := r.courier.SendImage(destination, mediaID); err != nil {
		return err
	}

	return r.courier.SendText(sender, confirmationMessage(destination))
}

// downloadImage resolves the temporary media URL and fetches the bytes.
func (r *Relay) downloadImage(mediaID string) ([]byte, error) {
	mediaURL, err := r.courier.ResolveMediaURL(mediaID)
	if err != nil {
		return nil, err
	}
	return r.courier.DownloadMedia(mediaURL)
}
