// Package msggen assembles the six .msg documents derived from an action
// definition.
//
// Every output kind is described by a Variant record: which boilerplate
// fields open the message, which parsed section (if any) is spliced in, and
// which composite field referencing the action's own types closes it. One
// generic Build routine turns a Variant, an Identity and a Definition into
// a Document.
package msggen

import (
	"strings"

	"github.com/K4R-IAI/UROSActionLib/internal/actiondef"
)

const (
	goalIDField     = "actionlib_msgs/GoalID goal_id"
	goalStatusField = "actionlib_msgs/GoalStatus goal_status"

	// FileExtension is appended to every generated file name.
	FileExtension = ".msg"
)

// Identity names the action being compiled. Package and Stem are used
// verbatim in composite type references.
type Identity struct {
	Package string
	Stem    string
}

// Variant is one row of the output table.
type Variant struct {
	// Suffix is appended to the action stem to form the message name.
	Suffix string
	// Boilerplate fields open the message, in order.
	Boilerplate []string
	// Splice marks variants that copy a parsed section after the boilerplate.
	Splice bool
	// Section is the section copied when Splice is set.
	Section actiondef.Section
	// Composite, when set, is appended last after expanding {package} and
	// {stem}.
	Composite string
}

// Variants is the output table, in generation order.
var Variants = []Variant{
	{
		Suffix:      "ActionGoal",
		Boilerplate: []string{actiondef.HeaderField, goalIDField},
		Composite:   "{package}/{stem}Goal goal",
	},
	{
		Suffix:  "Goal",
		Splice:  true,
		Section: actiondef.Goal,
	},
	{
		Suffix:      "ActionResult",
		Boilerplate: []string{actiondef.HeaderField, goalStatusField},
		Composite:   "{package}/{stem}ActionResultResult result",
	},
	{
		Suffix:      "Result",
		Boilerplate: []string{actiondef.HeaderField},
		Splice:      true,
		Section:     actiondef.Result,
	},
	{
		Suffix:      "ActionFeedback",
		Boilerplate: []string{actiondef.HeaderField, goalStatusField},
		Composite:   "{package}/{stem}ActionFeedback feedback",
	},
	{
		Suffix:  "Feedback",
		Splice:  true,
		Section: actiondef.Feedback,
	},
}

// FileName returns the name of the file this variant produces for id.
func (v Variant) FileName(id Identity) string {
	return id.Stem + v.Suffix + FileExtension
}

func (v Variant) compositeLine(id Identity) string {
	return strings.NewReplacer("{package}", id.Package, "{stem}", id.Stem).Replace(v.Composite)
}
