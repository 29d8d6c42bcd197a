// internal/app/features/adsense/tag.go
package adsense

import "encoding/json"

// diagnostic is emitted when AdSense is enabled but not fully configured.
// It surfaces the misconfiguration in the browser console without breaking
// the story page.
const diagnostic = `<script>console.log("storyads: AdSense is enabled but the publisher or slot ID is missing.");</script>`

// Tag returns the <amp-story-auto-ads> element for the given AdSense
// publisher and slot IDs. The JSON block shape is the contract the AMP
// runtime depends on; values are HTML-escaped by the JSON encoder.
func Tag(client, slot string) string {
	payload := map[string]map[string]string{
		"ad-attributes": {
			"type":           "adsense",
			"data-ad-client": client,
			"data-ad-slot":   slot,
		},
	}
	b, _ := json.Marshal(payload)

	return "<amp-story-auto-ads>\n" +
		"<script type=\"application/json\">\n" +
		string(b) + "\n" +
		"</script>\n" +
		"</amp-story-auto-ads>"
}

// Render applies the emission guard and returns the markup to inject:
// the ad tag when AdSense is enabled and fully configured, a console
// diagnostic when enabled but incomplete, and nothing when disabled.
// Render never fails; ad insertion is best-effort decoration.
func Render(enabled bool, client, slot string) string {
	if !enabled {
		return ""
	}
	if client == "" || slot == "" {
		return diagnostic
	}
	return Tag(client, slot)
}
