package relay_model

// Webhook payload as delivered by the WhatsApp Business Platform. Only the
// fields the relay reads are modeled; everything else is ignored by the
// JSON decoder.

type WebhookBody struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
	Statuses         []Status  `json:"statuses,omitempty"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	Profile Profile `json:"profile"`
	WaID    string  `json:"wa_id"`
}

type Profile struct {
	Name string `json:"name"`
}

type Message struct {
	From      string `json:"from"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *Text  `json:"text,omitempty"`
	Image     *Media `json:"image,omitempty"`
}

type Text struct {
	Body string `json:"body"`
}

type Media struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// Status is a delivery/read callback. The relay acknowledges these without
// further action.
type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// Ack is the body every event POST is answered with, no matter the outcome,
// so the platform does not redeliver the event.
type Ack struct {
	OK bool `json:"ok"`
}

// FirstMessage walks entry[0].changes[0].value.messages[0] defensively.
// Any absent level means there is nothing to relay.
func (b *WebhookBody) FirstMessage() (Message, bool) {
	if len(b.Entry) == 0 {
		return Message{}, false
	}
	entry := b.Entry[0]
	if len(entry.Changes) == 0 {
		return Message{}, false
	}
	value := entry.Changes[0].Value
	if len(value.Messages) == 0 {
		return Message{}, false
	}
	return value.Messages[0], true
}

// Caption returns the user-supplied text accompanying the message: the text
// body when present, otherwise the image caption.
func (m *Message) Caption() string {
	if m.Text != nil && m.Text.Body != "" {
		return m.Text.Body
	}
	if m.Image != nil {
		return m.Image.Caption
	}
	return ""
}
