package actiondef

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

// cleanedLine is a surviving line together with its 1-based position in
// the raw input, kept so errors can point back at the file.
type cleanedLine struct {
	text   string
	number int
}

// cleanLine truncates raw at the first comment marker and strips the line
// terminator. The rest of the line is kept as written. ok is false when
// only whitespace is left.
func cleanLine(raw string) (string, bool) {
	if i := strings.Index(raw, CommentMarker); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	if strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}

func cleanLines(lines []string) []cleanedLine {
	out := make([]cleanedLine, 0, len(lines))
	for i, raw := range lines {
		if text, ok := cleanLine(raw); ok {
			out = append(out, cleanedLine{text: text, number: i + 1})
		}
	}
	return out
}

// Clean removes comments, line terminators and blank lines. Applying it to
// its own output returns the same lines.
func Clean(lines []string) []string {
	cleaned := cleanLines(lines)
	out := make([]string, len(cleaned))
	for i, l := range cleaned {
		out[i] = l.text
	}
	return out
}

// Parse cleans lines and splits them into the Goal, Result and Feedback
// sections. Lines may or may not carry their terminators.
func Parse(lines []string) (*Definition, error) {
	def := &Definition{
		Goal:     []string{},
		Result:   []string{},
		Feedback: []string{},
	}

	section := Goal
	separators := 0
	for _, l := range cleanLines(lines) {
		if l.text == Separator {
			separators++
			section++
			if section > Feedback {
				return nil, &FormatError{Line: l.number, Separators: separators}
			}
			continue
		}

		text := l.text
		if strings.Contains(text, HeaderToken) {
			text = HeaderField
		}
		def.appendTo(section, text)
	}

	return def, nil
}

// ReadLines reads r to the end and returns its lines without terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseFile reads and parses the action definition at path. Failures to
// open or read the file are reported as *ioerr.Error.
func ParseFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioerr.Wrap("read", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, ioerr.Wrap("read", path, err)
	}

	def, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
