// Package rest implements the storefront backend contract (JSON over HTTP)
// behind the ports.UserRegistrar, ports.CartBackend, and
// ports.CatalogBackend interfaces.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/domain/cart"
	"github.com/slicelab/storefront/internal/domain/catalog"
	apperrors "github.com/slicelab/storefront/internal/errors"
	"github.com/slicelab/storefront/internal/ports"
)

const (
	defaultTimeout  = 15 * time.Second
	requestIDHeader = "X-Request-Id"
)

// Client calls the storefront backend over HTTP. Non-2xx responses are
// uniformly failures; bodies are only inspected for an optional
// human-readable message.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds configuration for the backend client.
type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client // Optional, defaults to a client with a 15s timeout
}

// Compile-time conformance to the backend ports.
var (
	_ ports.UserRegistrar  = (*Client)(nil)
	_ ports.CartBackend    = (*Client)(nil)
	_ ports.CatalogBackend = (*Client)(nil)
)

// NewClient constructs a backend client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apperrors.Validation("backend base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// Register submits the identity to POST /users/add. The response body is
// ignored beyond the ok-check.
func (c *Client) Register(ctx context.Context, id domainauth.Identity) error {
	return c.send(ctx, http.MethodPost, "/users/add", id, nil)
}

// ListProducts fetches the catalog from GET /pizzas.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.send(ctx, http.MethodGet, "/pizzas", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchCart fetches the full current cart for an identity from
// GET /cart/{email}.
func (c *Client) FetchCart(ctx context.Context, email string) ([]cart.Line, error) {
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}

	var lines []cart.Line
	if err := c.send(ctx, http.MethodGet, "/cart/"+url.PathEscape(email), nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// addItemRequest is the wire shape of POST /cart/add.
type addItemRequest struct {
	PizzaName  string  `json:"pizzaName"`
	PizzaPrice float64 `json:"pizzaPrice"`
	Quantity   int     `json:"quantity"`
	Email      string  `json:"email"`
}

// AddItem submits an add-to-cart request to POST /cart/add.
func (c *Client) AddItem(ctx context.Context, in ports.AddItemInput) error {
	if in.Email == "" {
		return apperrors.Validation("email is required")
	}
	if in.Quantity < 1 {
		return apperrors.Validation("quantity must be at least 1")
	}

	body := addItemRequest{
		PizzaName:  in.ItemName,
		PizzaPrice: in.UnitPrice,
		Quantity:   in.Quantity,
		Email:      in.Email,
	}
	return c.send(ctx, http.MethodPost, "/cart/add", body, nil)
}

// RemoveQuantity submits DELETE /cart/remove/{id}/{email}?quantity=N.
func (c *Client) RemoveQuantity(ctx context.Context, in ports.RemoveInput) error {
	if in.Email == "" {
		return apperrors.Validation("email is required")
	}
	if in.Amount < 1 {
		return apperrors.Validation("removal amount must be at least 1")
	}

	path := fmt.Sprintf("/cart/remove/%d/%s?quantity=%d", in.LineID, url.PathEscape(in.Email), in.Amount)
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

// send issues one request and decodes the response into out when out is
// non-nil. Transport failures and non-2xx statuses map to the app error
// taxonomy.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.Wrap(ctx.Err(), apperrors.ErrCodeCanceled, method+" "+path)
		}
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, method+" "+path)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close failures are unactionable here

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Rejected(serverMessage(resp.Body, resp.Status))
	}

	if out != nil {
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			return apperrors.Wrap(decodeErr, apperrors.ErrCodeMalformed, "decode response from "+path)
		}
	}
	return nil
}

// serverMessage extracts the optional {"message": ...} from an error body,
// falling back to the HTTP status line.
func serverMessage(body io.Reader, status string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return status
}
