package mailjet_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mailjet "github.com/example/mailjet-go"
	"github.com/example/mailjet-go/common"
	v3 "github.com/example/mailjet-go/v3"
)

func newTestMessage() *v3.Message {
	message := v3.NewMessage("a@b.com", "A", "subject", "body")
	message.PushRecipient(common.NewRecipient("c@d.com"))
	return message
}

type failingHTTPClient struct {
	err error
}

func (f failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestNewClientRequiresKeys(t *testing.T) {
	if _, err := mailjet.NewClient(mailjet.V3, "", "private"); err == nil {
		t.Fatalf("expected an error for a missing public key")
	}
	if _, err := mailjet.NewClient(mailjet.V3, "public", " "); err == nil {
		t.Fatalf("expected an error for a missing private key")
	}
}

func TestSendSuccess(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/send" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"Sent":[{"Email":"c@d.com","MessageID":1,"MessageUUID":"u"}]}`))
	}))
	defer server.Close()

	client, err := mailjet.NewClient(mailjet.V3, "pub", "priv", mailjet.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	response, err := client.Send(context.Background(), newTestMessage())
	if err != nil {
		t.Fatalf("expected send to succeed: %v", err)
	}

	if len(response.Sent) != 1 {
		t.Fatalf("expected one sent record, got %d", len(response.Sent))
	}
	sent := response.Sent[0]
	if sent.Email != "c@d.com" || sent.MessageID != 1 || sent.MessageUUID != "u" {
		t.Fatalf("unexpected sent record: %+v", sent)
	}

	if !strings.HasPrefix(gotAuth, "Basic ") {
		t.Fatalf("expected basic auth header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if gotBody["FromEmail"] != "a@b.com" {
		t.Fatalf("expected serialized FromEmail in request body, got %v", gotBody["FromEmail"])
	}
}

func TestSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ErrorInfo":"","ErrorMessage":"Invalid FromEmail","StatusCode":400}`))
	}))
	defer server.Close()

	client, err := mailjet.NewClient(mailjet.V3, "pub", "priv", mailjet.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	response, err := client.Send(context.Background(), newTestMessage())
	if response != nil {
		t.Fatalf("expected no response on a rejected send")
	}

	var provErr *mailjet.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected a provider error, got %T: %v", err, err)
	}
	if provErr.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", provErr.StatusCode)
	}
	if provErr.ErrorMessage != "Invalid FromEmail" {
		t.Fatalf("unexpected error message: %q", provErr.ErrorMessage)
	}
	if !strings.Contains(provErr.Error(), "Invalid FromEmail") {
		t.Fatalf("expected the error string to carry the provider message: %v", provErr)
	}
}

func TestSendDecodeError(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "malformed success body", status: http.StatusOK, body: "not-json"},
		{name: "malformed error body", status: http.StatusBadRequest, body: "<html>gateway</html>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client, err := mailjet.NewClient(mailjet.V3, "pub", "priv", mailjet.WithBaseURL(server.URL))
			if err != nil {
				t.Fatalf("failed to create client: %v", err)
			}

			_, err = client.Send(context.Background(), newTestMessage())

			var decodeErr *mailjet.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected a decode error, got %T: %v", err, err)
			}
			if decodeErr.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, decodeErr.StatusCode)
			}
			if string(decodeErr.Body) != tc.body {
				t.Fatalf("expected the raw body to be retained, got %q", decodeErr.Body)
			}
		})
	}
}

func TestSendTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	client, err := mailjet.NewClient(mailjet.V3, "pub", "priv",
		mailjet.WithHTTPClient(failingHTTPClient{err: boom}))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Send(context.Background(), newTestMessage())

	var transportErr *mailjet.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected a transport error, got %T: %v", err, err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected the underlying error to be preserved")
	}

	var provErr *mailjet.ProviderError
	var decodeErr *mailjet.DecodeError
	if errors.As(err, &provErr) || errors.As(err, &decodeErr) {
		t.Fatalf("expected the transport error to be distinct from the other kinds")
	}
}
