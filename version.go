package mailjet

// SendAPIVersion selects the Send API generation the client talks to.
// The version determines both the base URL and the payload shape the
// provider expects; only V3 is fully modeled by this library.
type SendAPIVersion int

const (
	// V3 is the Send API v3 (email). See the v3 package for its
	// payload types.
	V3 SendAPIVersion = iota
	// V31 is the Send API v3.1 (email). See the v31 package.
	V31
	// V4 is the Send API v4 (SMS). Only the endpoint is reserved;
	// no payload type ships with this library yet.
	V4
)

// BaseURL returns the fixed API root for the version.
func (v SendAPIVersion) BaseURL() string {
	switch v {
	case V31:
		return "https://api.mailjet.com/v3.1"
	case V4:
		return "https://api.mailjet.com/v4"
	default:
		return "https://api.mailjet.com/v3"
	}
}

// sendPath returns the send endpoint path relative to the base URL.
func (v SendAPIVersion) sendPath() string {
	if v == V4 {
		return "/sms-send"
	}
	return "/send"
}

// String returns the version label used in log events.
func (v SendAPIVersion) String() string {
	switch v {
	case V31:
		return "v3.1"
	case V4:
		return "v4"
	default:
		return "v3"
	}
}
