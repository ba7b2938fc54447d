// Package mailjet is a client for Mailjet's transactional Send API.
//
// Callers build a message for the API version they target (see the v3
// and v31 packages), then submit it through a Client:
//
//	client, err := mailjet.NewClient(mailjet.V3, publicKey, privateKey)
//	if err != nil {
//		// ...
//	}
//
//	message := v3.NewMessage(
//		"sender@company.com",
//		"Acme Notifications",
//		"Your flight plan",
//		"Dear passenger, welcome aboard!",
//	)
//	message.PushRecipient(common.NewRecipient("receiver@company.com"))
//
//	response, err := client.Send(ctx, message)
//
// The client performs no retries, no local validation and no batching;
// every HTTP outcome maps to exactly one of *Response, *ProviderError,
// *DecodeError or *TransportError. A Client holds no mutable state after
// construction and may be shared across goroutines.
package mailjet

// Payload is implemented by every message shape that can be submitted
// to the Send API. Each API version package provides its own payload
// types; Payload returns the version specific JSON wire representation.
type Payload interface {
	Payload() ([]byte, error)
}
