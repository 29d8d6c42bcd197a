// internal/app/features/adsenseremote/tag.go
package adsenseremote

import "encoding/json"

// Tag returns the <amp-story-auto-ads> element for AdSense identifiers
// fetched from the ad-config API. The JSON block carries the property code
// alongside the client and slot; values are HTML-escaped by the encoder.
func Tag(client, slot, propertyCode string) string {
	payload := map[string]map[string]string{
		"ad-attributes": {
			"type":               "adsense",
			"data-ad-client":     client,
			"data-ad-slot":       slot,
			"data-property-code": propertyCode,
		},
	}
	b, _ := json.Marshal(payload)

	return "<amp-story-auto-ads>\n" +
		"<script type=\"application/json\">\n" +
		string(b) + "\n" +
		"</script>\n" +
		"</amp-story-auto-ads>"
}
