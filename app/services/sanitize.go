package services

import "strings"

// StripMarkup reduces rich editor output to plain text. Only the inner
// text of the first recognized markup segment is kept: everything between
// the first '>' and the '<' that follows it. Input without any markup
// passes through unchanged. Either way the result is whitespace-trimmed.
func StripMarkup(rich string) string {
	i := strings.IndexByte(rich, '>')
	if i < 0 {
		return strings.TrimSpace(rich)
	}
	inner := rich[i+1:]
	if j := strings.IndexByte(inner, '<'); j >= 0 {
		inner = inner[:j]
	}
	return strings.TrimSpace(inner)
}
