package mailjet

// Sent describes one recipient the provider accepted the message for.
type Sent struct {
	Email       string `json:"Email"`
	MessageID   int64  `json:"MessageID"`
	MessageUUID string `json:"MessageUUID"`
}

// Response is the provider's success envelope for the send endpoint.
//
//	{"Sent":[{"Email":"...","MessageID":1,"MessageUUID":"..."}]}
type Response struct {
	Sent []Sent `json:"Sent"`
}
