package mailjet_test

import (
	"testing"

	mailjet "github.com/example/mailjet-go"
)

func TestVersionBaseURL(t *testing.T) {
	cases := []struct {
		version mailjet.SendAPIVersion
		url     string
		label   string
	}{
		{mailjet.V3, "https://api.mailjet.com/v3", "v3"},
		{mailjet.V31, "https://api.mailjet.com/v3.1", "v3.1"},
		{mailjet.V4, "https://api.mailjet.com/v4", "v4"},
	}

	for _, tc := range cases {
		if got := tc.version.BaseURL(); got != tc.url {
			t.Fatalf("expected %s base url %q, got %q", tc.label, tc.url, got)
		}
		if got := tc.version.String(); got != tc.label {
			t.Fatalf("expected version label %q, got %q", tc.label, got)
		}
	}
}
