package contactform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/umerfilms/website/internal/contact"
)

// Submitter delivers a submission to the contact endpoint.
type Submitter interface {
	Submit(ctx context.Context, s contact.Submission) error
}

type SubmitterFunc func(ctx context.Context, s contact.Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s contact.Submission) error {
	return f(ctx, s)
}

// ServiceSubmitter submits in-process, without an HTTP round trip.
func ServiceSubmitter(svc *contact.Service) Submitter {
	return SubmitterFunc(func(ctx context.Context, s contact.Submission) error {
		_, err := svc.Submit(ctx, s)
		return err
	})
}

// SubmitError is a rejected round trip. Status is zero when no response
// was received.
type SubmitError struct {
	Status  int
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	switch {
	case e.Err != nil:
		return "contactform: submit: " + e.Err.Error()
	case e.Message != "":
		return fmt.Sprintf("contactform: submit: status %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("contactform: submit: status %d", e.Status)
	}
}

func (e *SubmitError) Unwrap() error { return e.Err }

// ContactPath is the endpoint Client posts to.
const ContactPath = "/api/contact"

// maxResponseSize bounds how much of a response body Client reads.
const maxResponseSize = 16 << 10

// Client submits over HTTP to a running endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// NewClient returns a Client for the site at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + ContactPath,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts s as JSON, raw values and honeypot included. A non-2xx
// status or success=false is a *SubmitError.
func (c *Client) Submit(ctx context.Context, s contact.Submission) error {
	body, err := json.Marshal(s)
	if err != nil {
		return &SubmitError{Err: fmt.Errorf("encode: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &SubmitError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &SubmitError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	var out contact.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &SubmitError{Status: resp.StatusCode}
		}
		return &SubmitError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !out.Success {
		return &SubmitError{Status: resp.StatusCode, Message: out.Message}
	}
	return nil
}
