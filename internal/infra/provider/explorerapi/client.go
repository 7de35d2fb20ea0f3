// Package explorerapi is the REST client for the explorer-style history
// provider. It implements the explorer adapter's HistoryAPI port.
package explorerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/histwatch/histwatch/internal/adapter/explorer"
	"github.com/histwatch/histwatch/internal/txrecord"

	"github.com/hashicorp/go-retryablehttp"
)

// client talks to the explorer provider's REST API.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

// Compile-time assertion that client implements the HistoryAPI port.
var _ explorer.HistoryAPI = (*client)(nil)

// NewClient creates an explorer provider client. apiKey may be empty when
// the deployment does not require one.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// get issues one GET request against the provider and decodes the JSON
// response body into out.
func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("explorer provider returned status %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// historyEnvelope wraps the transaction list in the provider's response
// body.
type historyEnvelope struct {
	TxHistory []txrecord.ExplorerShape `json:"txHistory"`
}

// FetchAddressActivity returns one page of the address's transactions.
func (c *client) FetchAddressActivity(ctx context.Context, address, asset string, fromIndex, nbTx int64) ([]txrecord.ExplorerShape, error) {
	query := url.Values{
		"address1":  {address},
		"asset":     {asset},
		"fromIndex": {strconv.FormatInt(fromIndex, 10)},
		"nbTx":      {strconv.FormatInt(nbTx, 10)},
	}

	var envelope historyEnvelope
	if err := c.get(ctx, "/txhistory", query, &envelope); err != nil {
		return nil, err
	}

	return envelope.TxHistory, nil
}

// FetchActivityBetween returns one page of the transactions exchanged
// between the two addresses.
func (c *client) FetchActivityBetween(ctx context.Context, address, counterparty, asset string, fromIndex, nbTx int64) ([]txrecord.ExplorerShape, error) {
	query := url.Values{
		"address1":  {address},
		"address2":  {counterparty},
		"asset":     {asset},
		"fromIndex": {strconv.FormatInt(fromIndex, 10)},
		"nbTx":      {strconv.FormatInt(nbTx, 10)},
	}

	var envelope historyEnvelope
	if err := c.get(ctx, "/txhistory", query, &envelope); err != nil {
		return nil, err
	}

	return envelope.TxHistory, nil
}

// FetchFullNativeHistory returns the address's complete native-currency
// transaction history.
func (c *client) FetchFullNativeHistory(ctx context.Context, address string) ([]txrecord.ExplorerShape, error) {
	var envelope historyEnvelope
	if err := c.get(ctx, "/wallet-txhistory", url.Values{"address": {address}}, &envelope); err != nil {
		return nil, err
	}

	return envelope.TxHistory, nil
}

// FetchFullTokenHistory returns the address's complete token transfer
// history.
func (c *client) FetchFullTokenHistory(ctx context.Context, address string) ([]txrecord.ExplorerShape, error) {
	var envelope historyEnvelope
	if err := c.get(ctx, "/token-txhistory", url.Values{"address": {address}}, &envelope); err != nil {
		return nil, err
	}

	return envelope.TxHistory, nil
}

// FetchSupportedAssets returns the asset symbols the platform supports.
func (c *client) FetchSupportedAssets(ctx context.Context) ([]string, error) {
	var envelope struct {
		Assets []struct {
			Symbol string `json:"symbol"`
		} `json:"assets"`
	}
	if err := c.get(ctx, "/assets", url.Values{}, &envelope); err != nil {
		return nil, err
	}

	symbols := make([]string, len(envelope.Assets))
	for i, asset := range envelope.Assets {
		symbols[i] = asset.Symbol
	}

	return symbols, nil
}
