package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/teemow/googleads-mcp/internal/auth"
	"github.com/teemow/googleads-mcp/internal/logging"
)

const (
	// APIVersion is the Google Ads REST API version this client speaks.
	APIVersion = "v19"

	defaultBaseURL = "https://googleads.googleapis.com/" + APIVersion

	// requestTimeout bounds every API call.
	requestTimeout = 30 * time.Second
)

// Client calls the Google Ads REST API. All requests carry the OAuth
// bearer token, the developer token and, when configured, the
// login-customer-id header identifying the manager account.
type Client struct {
	httpClient *http.Client
	baseURL    string
	provider   *auth.Provider
	logger     *slog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Google Ads API client using the given credential
// provider.
func NewClient(provider *auth.Provider, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		provider:   provider,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchStreamRequest struct {
	Query string `json:"query"`
}

type searchStreamChunk struct {
	Results []map[string]any `json:"results"`
}

// SearchStream executes a GAQL query against the given customer account
// and returns the result rows of the first response chunk. The login
// customer ID must be configured; this is checked before any network
// I/O.
func (c *Client) SearchStream(ctx context.Context, customerID, query string) ([]map[string]any, error) {
	digits, err := auth.CustomerIDDigits(customerID)
	if err != nil {
		return nil, err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return nil, err
	}

	var chunks []searchStreamChunk
	path := "/customers/" + digits + "/googleAds:searchStream"
	if err := c.post(ctx, "searchStream", path, searchStreamRequest{Query: query}, &chunks); err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return []map[string]any{}, nil
	}
	results := chunks[0].Results
	if results == nil {
		results = []map[string]any{}
	}
	return results, nil
}

type mutateRequest struct {
	MutateOperations []MutateOperation `json:"mutateOperations"`
}

// Mutate submits a batch of mutate operations for the given customer
// account. The login customer ID precondition applies as for
// SearchStream.
func (c *Client) Mutate(ctx context.Context, customerID string, operations []MutateOperation) (*MutateResponse, error) {
	digits, err := auth.CustomerIDDigits(customerID)
	if err != nil {
		return nil, err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return nil, err
	}

	var response MutateResponse
	path := "/customers/" + digits + "/googleAds:mutate"
	if err := c.post(ctx, "mutate", path, mutateRequest{MutateOperations: operations}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type listAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

// ListAccessibleCustomers returns the customer resource names the
// authenticated principal can access directly.
func (c *Client) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	var response listAccessibleCustomersResponse
	if err := c.get(ctx, "listAccessibleCustomers", "/customers:listAccessibleCustomers", &response); err != nil {
		return nil, err
	}
	return response.ResourceNames, nil
}

// customerDigitsChecked validates and normalizes a customer ID for use
// in a request path.
func customerDigitsChecked(customerID string) (string, error) {
	return auth.CustomerIDDigits(customerID)
}

func (c *Client) requireLoginCustomerID() error {
	if c.provider.LoginCustomerID() == "" {
		return &auth.ConfigurationError{
			Reason: "login customer ID (manager account) must be configured to access accounts",
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.attachAuthHeaders(ctx, req); err != nil {
		return err
	}

	c.logger.Debug("google ads api request",
		logging.Operation(op),
		slog.String("method", method),
		slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(op, req, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

func (c *Client) attachAuthHeaders(ctx context.Context, req *http.Request) error {
	accessToken, err := c.provider.AccessToken(ctx)
	if err != nil {
		return err
	}
	developerToken, err := c.provider.DeveloperToken()
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", developerToken)
	if loginID := c.provider.LoginCustomerID(); loginID != "" {
		req.Header.Set("login-customer-id", loginID)
	}
	return nil
}

// apiError builds an APIError with header-presence diagnostics. Secret
// header values are reduced to presence booleans; only the non-secret
// login-customer-id is echoed.
func (c *Client) apiError(op string, req *http.Request, resp *http.Response) error {
	bodyBytes, readErr := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if readErr != nil {
		bodyBytes = []byte(fmt.Sprintf("<failed to read response body: %v>", readErr))
	}

	apiErr := &APIError{
		Op:                    op,
		StatusCode:            resp.StatusCode,
		Status:                resp.Status,
		Body:                  string(bodyBytes),
		DeveloperTokenPresent: req.Header.Get("developer-token") != "",
		AuthorizationPresent:  req.Header.Get("Authorization") != "",
		LoginCustomerID:       req.Header.Get("login-customer-id"),
	}

	c.logger.Warn("google ads api error",
		logging.Operation(op),
		slog.Int("status_code", resp.StatusCode))

	return apiErr
}
