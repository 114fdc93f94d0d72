package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugc is safe for concurrent use once built.
var ugc = bluemonday.UGCPolicy()

// maxSanitizePasses bounds how many layers of entity encoding are unwrapped.
const maxSanitizePasses = 4

// sanitize strips markup that could execute in a browser from user-authored
// rich text. Text is stored as typed: bluemonday's entity escaping is undone,
// so "a < b && c" round-trips unchanged. Unescaping can surface markup that
// arrived entity-encoded, so the pair is repeated until the output is stable.
func sanitize(s string) string {
	out := s
	for range maxSanitizePasses {
		clean := ugc.Sanitize(out)
		next := html.UnescapeString(clean)
		if next == out {
			return strings.TrimSpace(next)
		}
		out = next
	}
	return strings.TrimSpace(ugc.Sanitize(out))
}
