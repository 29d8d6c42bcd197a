// internal/app/features/admanager/tag.go
package admanager

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dalemusser/storyads/internal/app/system/adfilters"
)

// FilterName is the adfilters chain applied to the Ad Manager tag
// attributes before serialization. Registered filters may add, replace,
// or remove any attribute, including "type".
const FilterName = "admanager_tag_attributes"

// Tag returns the <amp-story-auto-ads> element for the given Ad Manager
// slot, or "" when slot is empty. The attribute map is passed through the
// FilterName chain and the filter output is serialized verbatim: slashes
// and Unicode are not escaped, so slot paths like /30497360/a4a/example
// appear as-is in the JSON block.
func Tag(slot string) string {
	if slot == "" {
		return ""
	}

	attrs := map[string]string{
		"type":      "doubleclick",
		"data-slot": slot,
	}
	attrs = adfilters.Apply(FilterName, attrs)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(map[string]map[string]string{"ad-attributes": attrs})

	return "<amp-story-auto-ads>\n" +
		"<script type=\"application/json\">\n" +
		strings.TrimRight(buf.String(), "\n") + "\n" +
		"</script>\n" +
		"</amp-story-auto-ads>"
}
