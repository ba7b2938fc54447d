// Package v31 models payloads for Mailjet's Send API v3.1, where
// senders and recipients are structured objects and every request wraps
// its messages in a Messages envelope.
package v31

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/example/mailjet-go/common"
)

// Message is one email in a Send API v3.1 request.
type Message struct {
	From      common.Recipient   `json:"From"`
	To        []common.Recipient `json:"To"`
	Cc        []common.Recipient `json:"Cc,omitempty"`
	Bcc       []common.Recipient `json:"Bcc,omitempty"`
	Subject   string             `json:"Subject,omitempty"`
	TextPart  string             `json:"TextPart,omitempty"`
	HTMLPart  string             `json:"HTMLPart,omitempty"`
	CustomID  string             `json:"CustomID,omitempty"`
	Variables common.Vars        `json:"Variables,omitempty"`
}

// NewMessage constructs a v3.1 message with the fields every send
// needs. Remaining fields are public and set directly.
func NewMessage(from common.Recipient, to []common.Recipient, subject, textPart, htmlPart string) Message {
	return Message{
		From:     from,
		To:       to,
		Subject:  subject,
		TextPart: textPart,
		HTMLPart: htmlPart,
	}
}

// AssignCustomID sets a fresh UUID as the message's CustomID and
// returns it. The provider echoes the CustomID in delivery events,
// which lets callers correlate them without storing MessageIDs.
func (m *Message) AssignCustomID() string {
	m.CustomID = uuid.NewString()
	return m.CustomID
}

// Messages is the request envelope for the v3.1 send endpoint.
type Messages struct {
	Messages []Message `json:"Messages"`
}

// NewMessages wraps a single message in the request envelope.
func NewMessages(m Message) Messages {
	return Messages{Messages: []Message{m}}
}

// Push appends a message to the envelope.
func (ms *Messages) Push(m Message) {
	ms.Messages = append(ms.Messages, m)
}

// Payload returns the JSON wire representation consumed by the Send
// API v3.1 endpoint.
func (ms Messages) Payload() ([]byte, error) {
	return json.Marshal(ms)
}
