package mailjet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// defaultBodyLimit bounds how many bytes are read from a provider
// response body.
const defaultBodyLimit = 16 * 1024

// HTTPClient abstracts the http.Client Do method for easier testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customises the behaviour of a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to talk to the API.
// Timeouts, proxies and TLS configuration belong to the injected client;
// the library itself imposes none.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL replaces the version-derived base URL. Useful for tests
// and for proxied deployments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithLogger attaches a logger for debug-level dispatch events. The
// default is a no-op logger; credentials are never logged either way.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBodyLimit adjusts how many bytes are retained from a provider
// response body.
func WithBodyLimit(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxBodyBytes = limit
		}
	}
}

// Client submits messages to the Send API endpoint of one API version.
// All fields are fixed at construction, so a single Client may be reused
// across goroutines; each Send is an independent round trip.
type Client struct {
	version      SendAPIVersion
	publicKey    string
	privateKey   string
	baseURL      string
	httpClient   HTTPClient
	logger       zerolog.Logger
	maxBodyBytes int64
}

// NewClient constructs a client for the given Send API version,
// authenticating with the account's public and private API keys.
func NewClient(version SendAPIVersion, publicKey, privateKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, errors.New("mailjet: public key is required")
	}
	if strings.TrimSpace(privateKey) == "" {
		return nil, errors.New("mailjet: private key is required")
	}

	c := &Client{
		version:      version,
		publicKey:    strings.TrimSpace(publicKey),
		privateKey:   strings.TrimSpace(privateKey),
		baseURL:      version.BaseURL(),
		httpClient:   &http.Client{},
		logger:       zerolog.Nop(),
		maxBodyBytes: defaultBodyLimit,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.maxBodyBytes <= 0 {
		c.maxBodyBytes = defaultBodyLimit
	}
	if c.baseURL == "" {
		c.baseURL = version.BaseURL()
	}

	return c, nil
}

// Version returns the Send API version the client was built for.
func (c *Client) Version() SendAPIVersion { return c.version }

// Send serializes the payload, POSTs it to the version's send endpoint
// with HTTP Basic Auth, and decodes the outcome. Exactly one of the
// return values is non-nil: a *Response on a 2xx status, or an error
// that is a *ProviderError (request rejected by the provider), a
// *DecodeError (body did not match the expected shape) or a
// *TransportError (no response received). Nothing is retried.
func (c *Client) Send(ctx context.Context, payload Payload) (*Response, error) {
	body, err := payload.Payload()
	if err != nil {
		return nil, fmt.Errorf("mailjet: marshal payload: %w", err)
	}

	endpoint := c.baseURL + c.version.sendPath()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mailjet: new request: %w", err)
	}
	req.SetBasicAuth(c.publicKey, c.privateKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("version", c.version.String()).
		Str("endpoint", endpoint).
		Int("payload_bytes", len(body)).
		Msg("dispatching send request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := c.readBody(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var out Response
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &DecodeError{StatusCode: resp.StatusCode, Body: raw, Err: err}
		}
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Int("sent", len(out.Sent)).
			Msg("send accepted")
		return &out, nil
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: raw, Err: err}
	}

	provErr := &ProviderError{
		StatusCode:   resp.StatusCode,
		ErrorInfo:    envelope.ErrorInfo,
		ErrorMessage: envelope.ErrorMessage,
		Raw:          string(raw),
	}
	if envelope.StatusCode != 0 {
		provErr.StatusCode = envelope.StatusCode
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("error_info", provErr.ErrorInfo).
		Msg("send rejected by provider")

	return nil, provErr
}

// readBody drains the response body up to the configured limit.
func (c *Client) readBody(rc io.Reader) ([]byte, error) {
	limit := c.maxBodyBytes
	if limit <= 0 {
		limit = defaultBodyLimit
	}

	data, err := io.ReadAll(io.LimitReader(rc, limit))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
