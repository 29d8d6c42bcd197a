// Package htmlsanitize strips unsafe markup from admin-supplied HTML.
//
// Fallback content saved in ad settings is rendered into story pages, so
// it goes through a bluemonday UGC policy before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}()

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Safe formatting tags, links, and tables are preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
