// Package common holds the value types shared across Send API versions.
package common

import (
	"fmt"
	"strings"
)

// Recipient is an email address plus an optional display name. It is a
// plain value: the library performs no syntax validation on the address,
// the provider enforces its own rules.
type Recipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

// NewRecipient builds a recipient with no display name.
func NewRecipient(email string) Recipient {
	return Recipient{Email: email}
}

// NewRecipientWithName builds a recipient with a display name.
func NewRecipientWithName(email, name string) Recipient {
	return Recipient{Email: email, Name: name}
}

// String renders the recipient in the provider's address-list form,
// e.g. `"John Doe" <john@example.com>`.
func (r Recipient) String() string {
	if r.Name == "" {
		return fmt.Sprintf("<%s>", r.Email)
	}
	return fmt.Sprintf("%q <%s>", r.Name, r.Email)
}

// ParseRecipients splits a comma separated list of plain addresses into
// recipients. Display names are not supported in this form.
func ParseRecipients(list string) []Recipient {
	parts := strings.Split(list, ",")
	recipients := make([]Recipient, 0, len(parts))
	for _, part := range parts {
		recipients = append(recipients, NewRecipient(strings.TrimSpace(part)))
	}
	return recipients
}

// JoinRecipients renders recipients as the comma separated form used by
// the v3 To, Cc and Bcc fields.
func JoinRecipients(recipients []Recipient) string {
	rendered := make([]string, 0, len(recipients))
	for _, r := range recipients {
		rendered = append(rendered, r.String())
	}
	return strings.Join(rendered, ",")
}
