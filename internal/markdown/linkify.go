package markdown

import "regexp"

// urlPattern matches http/https URLs up to the first whitespace character.
var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// LinkifyURLs rewrites every URL in text into a Markdown link `[url](url)`.
//
// The transformation is purely textual (no Markdown parsing): start logs are
// embedded in fenced blocks where only the URL runs matter. Text without URLs
// is returned unchanged.
func LinkifyURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "[$0]($0)")
}
