// Package v3 models payloads for Mailjet's Send API v3.
//
// A Message carries one of two addressing styles. Recipients delivers a
// separate copy to each entry without exposing the other recipients; To,
// Cc and Bcc deliver a common message where every recipient sees the
// full address lists. The library does not reconcile the two: the caller
// picks one, and if both are populated both are serialized and the
// provider decides.
package v3

import (
	"encoding/json"

	"github.com/example/mailjet-go/common"
)

// RecipientList is a recipient set that serializes to the comma
// separated address string the v3 To, Cc and Bcc fields expect.
type RecipientList []common.Recipient

// MarshalJSON renders the list as a single comma separated string.
func (l RecipientList) MarshalJSON() ([]byte, error) {
	return json.Marshal(common.JoinRecipients(l))
}

// UnmarshalJSON accepts the comma separated string form. Display names
// are not recovered; each element parses as a plain address.
func (l *RecipientList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	if joined == "" {
		*l = nil
		return nil
	}
	*l = common.ParseRecipients(joined)
	return nil
}

// Message is the Send API v3 payload for one email. Fields are public
// and directly mutable; the mutator methods below cover the common
// cases without forcing a builder chain. Optional fields are omitted
// from the wire format when unset.
type Message struct {
	FromEmail         string             `json:"FromEmail"`
	FromName          string             `json:"FromName"`
	Subject           string             `json:"Subject,omitempty"`
	TextPart          string             `json:"Text-part,omitempty"`
	HTMLPart          string             `json:"Html-part,omitempty"`
	Recipients        []common.Recipient `json:"Recipients,omitempty"`
	To                RecipientList      `json:"To,omitempty"`
	Cc                RecipientList      `json:"Cc,omitempty"`
	Bcc               RecipientList      `json:"Bcc,omitempty"`
	Attachments       []Attachment       `json:"Attachments,omitempty"`
	InlineAttachments []Attachment       `json:"InlineAttachments,omitempty"`
	Vars              common.Vars        `json:"Vars,omitempty"`
}

// NewMessage constructs a message with the minimum sender fields.
// Subject and textPart may be empty; they are omitted from the wire
// format when they are.
func NewMessage(fromEmail, fromName, subject, textPart string) *Message {
	return &Message{
		FromEmail: fromEmail,
		FromName:  fromName,
		Subject:   subject,
		TextPart:  textPart,
	}
}

// PushRecipient appends one recipient to the unified Recipients list.
func (m *Message) PushRecipient(r common.Recipient) {
	m.Recipients = append(m.Recipients, r)
}

// PushManyRecipients appends recipients preserving their order.
func (m *Message) PushManyRecipients(recipients []common.Recipient) {
	m.Recipients = append(m.Recipients, recipients...)
}

// SetReceivers switches the message to the To/Cc/Bcc addressing style,
// replacing any prior value in all three fields. cc and bcc may be nil.
func (m *Message) SetReceivers(to, cc, bcc []common.Recipient) {
	m.To = RecipientList(to)
	m.Cc = RecipientList(cc)
	m.Bcc = RecipientList(bcc)
}

// Attach appends a regular attachment.
func (m *Message) Attach(a Attachment) {
	m.Attachments = append(m.Attachments, a)
}

// AttachInline appends an inline attachment. Inline attachments are
// referenced from HTMLPart via cid:<Filename>; the linkage is a caller
// convention the model does not check.
func (m *Message) AttachInline(a Attachment) {
	m.InlineAttachments = append(m.InlineAttachments, a)
}

// Payload returns the JSON wire representation consumed by the Send
// API v3 endpoint.
func (m *Message) Payload() ([]byte, error) {
	return json.Marshal(m)
}
