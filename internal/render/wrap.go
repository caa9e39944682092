package render

import "strings"

// Wrap breaks message into chunks of at most width-indent bytes, joining
// them with a newline followed by indent spaces. Chunking is greedy and
// byte-oriented, splitting mid-word if needed; log messages are free text
// with no tokenization worth trusting. A message that already fits, or a
// width that leaves no room after the indent, comes back unchanged.
func Wrap(message string, indent, width int) string {
	limit := width - indent
	if limit <= 0 || len(message) <= limit {
		return message
	}

	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	for start := 0; start < len(message); start += limit {
		end := start + limit
		if end > len(message) {
			end = len(message)
		}
		if start > 0 {
			b.WriteByte('\n')
			b.WriteString(pad)
		}
		b.WriteString(message[start:end])
	}
	return b.String()
}
