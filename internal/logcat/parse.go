package logcat

import (
	"regexp"
	"strconv"
	"time"
)

// Record is a single parsed logcat line.
type Record struct {
	PID        int
	Tag        string
	Level      Level
	Message    string
	CapturedAt time.Time
	Raw        string
}

// briefLine matches logcat's brief format: level letter, slash, tag
// (non-greedy, stopping before optional space padding and the open paren),
// the pid in parens, a colon, one space, then the message. The tag capture
// cannot represent tags containing a literal "(" followed by digits; the
// source format shares that ambiguity.
var briefLine = regexp.MustCompile(`^([VDIWE])/(.+?) *\( *(\d+)\): (.*)$`)

// TryParse decodes one raw line. A line that does not match the brief
// grammar is not an error; ok is false and the driver decides what to do
// with it.
func TryParse(line string) (Record, bool) {
	m := briefLine.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	pid, err := strconv.Atoi(m[3])
	if err != nil {
		// \d+ can still overflow int on absurd input.
		return Record{}, false
	}
	return Record{
		PID:        pid,
		Tag:        m[2],
		Level:      levelFromLetter(m[1][0]),
		Message:    m[4],
		CapturedAt: time.Now(),
		Raw:        line,
	}, true
}
