// Package custodialapi is the REST client for the custodial execution
// backend. It implements the custodial adapter's BackendAPI port.
package custodialapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/histwatch/histwatch/internal/adapter/custodial"

	"github.com/hashicorp/go-retryablehttp"
)

// client talks to the custodial backend's REST API.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// Compile-time assertion that client implements the BackendAPI port.
var _ custodial.BackendAPI = (*client)(nil)

// NewClient creates a custodial backend client.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchTransactionsSince returns the account's transactions with an id
// strictly greater than lastID, newest first.
func (c *client) FetchTransactionsSince(ctx context.Context, accountID string, lastID int64) ([]custodial.BackendTransaction, error) {
	query := url.Values{
		"accountId": {accountID},
		"afterId":   {strconv.FormatInt(lastID, 10)},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("custodial backend returned status %d", res.StatusCode)
	}

	var envelope struct {
		Transactions []custodial.BackendTransaction `json:"transactions"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return envelope.Transactions, nil
}
