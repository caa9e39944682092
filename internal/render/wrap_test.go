package render

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		message string
		indent  int
		width   int
		want    string
	}{
		{
			name:    "fits unchanged",
			message: "short",
			indent:  4,
			width:   20,
			want:    "short",
		},
		{
			name:    "exact fit unchanged",
			message: "0123456789",
			indent:  10,
			width:   20,
			want:    "0123456789",
		},
		{
			name:    "splits mid word",
			message: "abcdefghijk",
			indent:  2,
			width:   6,
			want:    "abcd\n  efgh\n  ijk",
		},
		{
			name:    "no room leaves message alone",
			message: "anything at all",
			indent:  20,
			width:   20,
			want:    "anything at all",
		},
		{
			name:    "empty message",
			message: "",
			indent:  4,
			width:   20,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.message, tt.indent, tt.width); got != tt.want {
				t.Errorf("Wrap(%q, %d, %d) = %q, want %q", tt.message, tt.indent, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapRoundTrip(t *testing.T) {
	message := strings.Repeat("the quick brown fox ", 12)
	wrapped := Wrap(message, 15, 60)
	restored := strings.ReplaceAll(wrapped, "\n"+strings.Repeat(" ", 15), "")
	if restored != message {
		t.Errorf("round trip lost content:\n got %q\nwant %q", restored, message)
	}
}

func TestWrapBoundary(t *testing.T) {
	const indent, width = 15, 60
	limit := width - indent

	wrapped := Wrap(strings.Repeat("x", 500), indent, width)
	for i, line := range strings.Split(wrapped, "\n") {
		content := line
		if i > 0 {
			content = strings.TrimPrefix(line, strings.Repeat(" ", indent))
		}
		if len(content) > limit {
			t.Errorf("line %d content is %d bytes, limit %d", i, len(content), limit)
		}
	}
}
