package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Assistant endpoint paths.
const (
	pathCategorize      = "/v1/categorize"
	pathReceiptScan     = "/v1/receipt-scan"
	pathPrioritize      = "/v1/prioritize"
	pathReport          = "/v1/report"
	pathSavingsPlan     = "/v1/savings-plan"
	pathCalendarSummary = "/v1/calendar-summary"
	pathChat            = "/v1/chat"
)

// ErrMissingCredential indicates no API key is configured for the
// assistant service. It is distinguished from transport failures
// because the user can fix it in settings.
var ErrMissingCredential = errors.New("assistant API key is not configured")

// RequestError is a failed assistant call: transport failure,
// unexpected status, or an undecodable body.
type RequestError struct {
	Path   string
	Status int
	Err    error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("assistant %s: unexpected status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("assistant %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error { return e.Err }

// Client calls the external assistant service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
}

// NewClient creates an assistant client. The API key may be empty; calls
// made without one fail with ErrMissingCredential.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// WithAPIKey returns a copy of the client using the given key. An empty
// key keeps the configured one, so a profile without a stored key falls
// back to the environment credential.
func (c *Client) WithAPIKey(apiKey string) *Client {
	if apiKey == "" {
		return c
	}
	clone := *c
	clone.apiKey = apiKey
	return &clone
}

// post sends a JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	if c.apiKey == "" {
		return ErrMissingCredential
	}

	body, err := json.Marshal(in)
	if err != nil {
		return &RequestError{Path: path, Err: fmt.Errorf("encoding request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &RequestError{Path: path, Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Path: path, Err: fmt.Errorf("http request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &RequestError{Path: path, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// Categorize suggests a category for an expense title.
func (c *Client) Categorize(ctx context.Context, req CategorizeRequest) (*CategorizeResponse, error) {
	var resp CategorizeResponse
	if err := c.post(ctx, pathCategorize, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScanReceipt extracts expense fields from a receipt image or text.
func (c *Client) ScanReceipt(ctx context.Context, req ReceiptScanRequest) (*ReceiptScanResponse, error) {
	var resp ReceiptScanResponse
	if err := c.post(ctx, pathReceiptScan, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Prioritize suggests a working order for the given tasks.
func (c *Client) Prioritize(ctx context.Context, req PrioritizeRequest) (*PrioritizeResponse, error) {
	var resp PrioritizeResponse
	if err := c.post(ctx, pathPrioritize, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Report generates a spending report.
func (c *Client) Report(ctx context.Context, req ReportRequest) (*ReportResponse, error) {
	var resp ReportResponse
	if err := c.post(ctx, pathReport, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SavingsPlan generates a plan toward a savings goal.
func (c *Client) SavingsPlan(ctx context.Context, req SavingsPlanRequest) (*SavingsPlanResponse, error) {
	var resp SavingsPlanResponse
	if err := c.post(ctx, pathSavingsPlan, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CalendarSummary summarizes one day's expenses and deadlines.
func (c *Client) CalendarSummary(ctx context.Context, req CalendarSummaryRequest) (*CalendarSummaryResponse, error) {
	var resp CalendarSummaryResponse
	if err := c.post(ctx, pathCalendarSummary, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat continues the financial chat conversation.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.post(ctx, pathChat, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
