package whatsapp

import (
	"bytes"
	"errors"
	"fmt"

	bootstrap "github.com/Rfluid/whatsapp-cloud-api/src/bootstrap"
	common "github.com/Rfluid/whatsapp-cloud-api/src/common"
	media "github.com/Rfluid/whatsapp-cloud-api/src/media"
	message "github.com/Rfluid/whatsapp-cloud-api/src/message"
	content "github.com/Rfluid/whatsapp-cloud-api/src/message/content"
	"github.com/pterm/pterm"
)

// Courier performs the relay's outbound Graph API operations with a single
// WhatsApp API instance. It implements relay_service.Courier.
type Courier struct {
	api *bootstrap.WhatsAppAPI
}

func NewCourier(api *bootstrap.WhatsAppAPI) *Courier {
	return &Courier{api: api}
}

// SendText sends a plain text message to a phone number.
func (c *Courier) SendText(to, body string) error {
	msg := message.Message{
		Direction: message.Direction{To: to, Type: "text"},
		Content:   message.Content{Text: &content.TextData{Body: body}},
	}
	msg.SetDefault()

	response, err := message.Send(*c.api, msg)
	if err != nil {
		return err
	}
	if len(response.Messages) == 0 {
		return errors.New("no message id returned by Meta")
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Text message %s sent to %s", response.Messages[0].ID.ID, to),
	)
	return nil
}

// SendImage sends a previously uploaded media object as an image message.
func (c *Courier) SendImage(to, mediaID string) error {
	msg := message.Message{
		Direction: message.Direction{To: to, Type: "image"},
		Content:   message.Content{Image: &media.UseMedia{ID: mediaID}},
	}
	msg.SetDefault()

	response, err := message.Send(*c.api, msg)
	if err != nil {
		return err
	}
	if len(response.Messages) == 0 {
		return errors.New("no message id returned by Meta")
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Image message %s sent to %s", response.Messages[0].ID.ID, to),
	)
	return nil
}

// ResolveMediaURL retrieves the temporary download URL for a media ID. The
// URL expires in 5 minutes.
func (c *Courier) ResolveMediaURL(mediaID string) (string, error) {
	mediaInfo, err := media.RetrieveURL(*c.api, mediaID, media.RetrieveInfo{})
	if err != nil {
		return "", err
	}
	return mediaInfo.URL, nil
}

// DownloadMedia fetches the media bytes from a resolved URL.
func (c *Courier) DownloadMedia(mediaURL string) ([]byte, error) {
	return media.Download(*c.api, mediaURL)
}

// UploadMedia uploads raw bytes as a new media object owned by the relay's
// account and returns the new media ID.
func (c *Courier) UploadMedia(filename string, data []byte, mimeType string) (string, error) {
	supportedMimeType, err := common.ParseMimeType(mimeType)
	if err != nil {
		return "", err
	}

	uploadData := media.UploadPayload{
		FileName: filename,
		FileData: bytes.NewReader(data),
		Type:     supportedMimeType,
	}
	uploadData.SetDefault()

	mediaID, err := media.Upload(*c.api, uploadData)
	if err != nil {
		return "", err
	}

	return mediaID.ID, nil
}
