/**
 * @description
 * This package provides a client for the internal admin API. It encapsulates
 * the logic for making authenticated requests to the user-lookup endpoint and
 * parsing the response into domain models.
 *
 * @dependencies
 * - net/http, encoding/json, fmt: Standard Go libraries.
 */
package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
)

// ErrUserNotFound is returned when the admin API has no user for the queried
// email.
var ErrUserNotFound = errors.New("admin api: user not found")

// Client is a client for the admin API.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewClient creates a new admin API client.
func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// GetUserByEmail fetches the user record, including its accounts, for the
// given email address.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("admin api base url is empty")
	}

	endpoint := fmt.Sprintf("%s/internal/users?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if strings.TrimSpace(c.serviceToken) != "" {
		req.Header.Set("X-Service-Token", strings.TrimSpace(c.serviceToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request to admin api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("admin api returned error status %d", resp.StatusCode)
	}

	var user domain.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode admin api response: %w", err)
	}

	return &user, nil
}
