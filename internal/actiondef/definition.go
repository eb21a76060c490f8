package actiondef

import "fmt"

const (
	// Separator divides the sections of an action definition.
	Separator = "---"
	// CommentMarker starts a comment that runs to the end of the line.
	CommentMarker = "#"
	// HeaderToken triggers the header macro when found anywhere on a line.
	HeaderToken = "Header"
	// HeaderField is the declaration a header macro line expands to.
	HeaderField = "std_msgs/Header header"
)

// Section identifies one of the three message bodies of an action, in the
// order they appear in the file.
type Section int

const (
	Goal Section = iota
	Result
	Feedback
)

// Sections lists every section in file order.
var Sections = []Section{Goal, Result, Feedback}

func (s Section) String() string {
	switch s {
	case Goal:
		return "Goal"
	case Result:
		return "Result"
	case Feedback:
		return "Feedback"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// Definition is a parsed action definition. Each field holds the cleaned
// field declarations of its section in declaration order. Empty sections
// are non-nil, zero-length slices.
type Definition struct {
	Goal     []string
	Result   []string
	Feedback []string
}

// Lines returns the field lines of the given section.
func (d *Definition) Lines(s Section) []string {
	switch s {
	case Goal:
		return d.Goal
	case Result:
		return d.Result
	case Feedback:
		return d.Feedback
	default:
		return nil
	}
}

func (d *Definition) appendTo(s Section, line string) {
	switch s {
	case Goal:
		d.Goal = append(d.Goal, line)
	case Result:
		d.Result = append(d.Result, line)
	case Feedback:
		d.Feedback = append(d.Feedback, line)
	}
}
