package mailer

import "regexp"

// urlPattern matches bare http(s) URLs. The exclusion of '<' stops the
// pattern from re-matching inside anchors it already produced.
var urlPattern = regexp.MustCompile(`https?://[^\s<]+`)

// LinkifyURLs wraps bare URLs in anchor tags. It is applied only to the
// outgoing email HTML; the stored message body stays verbatim.
func LinkifyURLs(s string) string {
	return urlPattern.ReplaceAllString(s, `<a href="$0">$0</a>`)
}
