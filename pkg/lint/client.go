package lint

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gitlab-lint/gll/pkg/constants"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var clientLog = logger.New("lint:client")

// Response is the JSON body returned by the CI lint endpoint.
// Reference: https://docs.gitlab.com/ee/api/lint.html
type Response struct {
	Status   string   `json:"status"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Client submits configuration text to one GitLab instance's CI lint
// endpoint. It is safe for sequential reuse across files; nothing is cached
// between calls.
type Client struct {
	domain     string
	token      string
	httpClient *http.Client
}

// NewClient builds a Client from resolved options. When VerifyTLS is false
// the transport skips certificate verification, matching the tool's default
// of tolerating self-signed certificates on private instances.
func NewClient(opts Options) *Client {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if !opts.VerifyTLS {
		// #nosec G402 - verification is off unless --verify is given, to
		// support privately hosted instances with self-signed certificates
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = constants.DefaultTimeout
	}

	return &Client{
		domain: opts.Domain,
		token:  opts.Token,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Lint POSTs the raw configuration text to the lint endpoint and returns the
// parsed response. Exactly one attempt is made; any transport failure,
// non-200 status, or malformed response body is returned as an error.
func (c *Client) Lint(ctx context.Context, content string) (*Response, error) {
	endpoint := c.endpointURL()
	clientLog.Printf("POST %s://%s%s (content=%d bytes)", "https", c.domain, constants.CILintEndpoint, len(content))

	body, err := json.Marshal(map[string]string{constants.ContentField: content})
	if err != nil {
		return nil, fmt.Errorf("failed to encode lint request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build lint request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(constants.PrivateTokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lint request to %s failed: %w", c.domain, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		clientLog.Printf("Non-200 response: status=%d", resp.StatusCode)
		return nil, fmt.Errorf("API endpoint returned status %d: %s (confirm your domain and token are set correctly)",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode lint response: %w", err)
	}
	switch parsed.Status {
	case string(StatusValid), string(StatusInvalid):
	default:
		// A 200 with an unrecognized body means the endpoint never
		// validated anything; passing it through would fail open.
		return nil, fmt.Errorf("lint endpoint returned unrecognized status %q (expected %q or %q)",
			parsed.Status, StatusValid, StatusInvalid)
	}
	clientLog.Printf("Lint response: status=%s, errors=%d, warnings=%d", parsed.Status, len(parsed.Errors), len(parsed.Warnings))
	return &parsed, nil
}

// endpointURL builds https://{domain}/api/v4/ci/lint. The token never
// appears here: it travels in the PRIVATE-TOKEN header so that URLs quoted
// in transport errors cannot leak it.
func (c *Client) endpointURL() string {
	u := url.URL{
		Scheme: "https",
		Host:   c.domain,
		Path:   constants.CILintEndpoint,
	}
	return u.String()
}
