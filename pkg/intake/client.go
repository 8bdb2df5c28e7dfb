// Package intake provides a lightweight client for the subscription and
// contact endpoints, for embedding in site widgets and CLI tools.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Response is the server's reply to a subscribe or contact request.
type Response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	EmailWarning string `json:"emailWarning"`
}

// APIError is a non-2xx reply. Status 4xx means the request itself was
// rejected and resending the same payload cannot succeed; 5xx is a
// server-side fault worth retrying.
type APIError struct {
	Status  int
	Message string   `json:"error"`
	Missing []string `json:"missing"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("intake: %s (status %d)", e.Message, e.Status)
}

// Retryable reports whether resending the identical payload could
// plausibly succeed.
func (e *APIError) Retryable() bool {
	return e.Status >= 500
}

// ContactForm is the payload for SubmitContact.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Client calls the intake API at BaseURL.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL, e.g.
// "https://api.example.com".
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Subscribe posts a newsletter subscription for email.
func (c *Client) Subscribe(ctx context.Context, email string) (*Response, error) {
	return c.post(ctx, "/api/subscribe", map[string]string{"email": email})
}

// SubmitContact posts a contact-form message.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (*Response, error) {
	return c.post(ctx, "/api/contact", form)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("intake: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("intake: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("intake: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("intake: decode response: %w", err)
	}
	return &out, nil
}
