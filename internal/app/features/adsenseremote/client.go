// internal/app/features/adsenseremote/client.go
package adsenseremote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/storyads/internal/app/system/requestid"
	"go.uber.org/zap"
)

// AdConfig holds the AdSense identifiers returned by the ad-config API.
type AdConfig struct {
	Client string
	Slot   string
}

// Client fetches ad configuration from the remote ad-config API.
//
// The remote call is best-effort: transport failures, non-2xx responses,
// malformed payloads, and unexpected identifier shapes all collapse to
// "no data" (nil). Failures are logged at debug level and never surfaced
// to callers.
type Client struct {
	endpoint string // URL template with a single %s for the property code
	http     *http.Client
	log      *zap.Logger
}

// NewClient constructs an ad-config API client. endpointTemplate must
// contain exactly one %s, which is replaced by the property code. Pass an
// oauth2-wrapped *http.Client for APIs that require client-credentials
// authentication.
func NewClient(endpointTemplate string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint: endpointTemplate,
		http:     httpClient,
		log:      logger,
	}
}

// Endpoint returns the ad-config URL for the given property code.
// The code's shape is not validated; the API rejects unknown codes itself.
func (c *Client) Endpoint(code string) string {
	return fmt.Sprintf(c.endpoint, code)
}

// adConfigResponse mirrors the remote payload:
//
//	{ "data": { "adConfig": { "adsenseClientId": "<client>|<slot>" } } }
type adConfigResponse struct {
	Data struct {
		AdConfig struct {
			AdSenseClientID string `json:"adsenseClientId"`
		} `json:"adConfig"`
	} `json:"data"`
}

// FetchAdConfig issues a single GET to the endpoint for the given property
// code and parses the AdSense identifiers out of the response. It returns
// nil when anything goes wrong; there is no error to handle.
//
// The adsenseClientId value must split into exactly two "|"-delimited
// parts (client and slot); anything else is treated as a fetch failure.
func (c *Client) FetchAdConfig(ctx context.Context, code string) *AdConfig {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(code), nil)
	if err != nil {
		c.log.Debug("adsenseremote: building request failed", zap.Error(err))
		return nil
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("adsenseremote: fetch failed",
			zap.String("property_code", code),
			zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug("adsenseremote: unexpected status",
			zap.String("property_code", code),
			zap.Int("status", resp.StatusCode))
		return nil
	}

	var payload adConfigResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Debug("adsenseremote: malformed response", zap.Error(err))
		return nil
	}

	parts := strings.Split(payload.Data.AdConfig.AdSenseClientID, "|")
	if len(parts) != 2 {
		c.log.Debug("adsenseremote: unexpected client ID shape",
			zap.String("adsense_client_id", payload.Data.AdConfig.AdSenseClientID))
		return nil
	}

	return &AdConfig{Client: parts[0], Slot: parts[1]}
}
