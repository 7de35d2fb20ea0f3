// Package pushapi is the REST client for the notification-feed provider. It
// implements the pushfeed adapter's NotificationAPI port.
package pushapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/histwatch/histwatch/internal/adapter/pushfeed"

	"github.com/hashicorp/go-retryablehttp"
)

// client talks to the notification provider's REST API.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// Compile-time assertion that client implements the NotificationAPI port.
var _ pushfeed.NotificationAPI = (*client)(nil)

// NewClient creates a notification provider client.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchNotificationsSince returns the wallet's notifications of the given
// kinds created strictly after the unix-seconds timestamp.
func (c *client) FetchNotificationsSince(ctx context.Context, walletID string, eventKinds []string, since int64) ([]pushfeed.Event, error) {
	query := url.Values{
		"walletId":      {walletID},
		"fromTimestamp": {strconv.FormatInt(since, 10)},
	}
	for _, kind := range eventKinds {
		query.Add("type", kind)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/notifications?"+query.Encode(), nil)
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
		return nil, fmt.Errorf("notification provider returned status %d", res.StatusCode)
	}

	var envelope struct {
		Notifications []pushfeed.Event `json:"notifications"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return envelope.Notifications, nil
}
