// Package actiondef parses the .action interface DSL.
//
// An action definition is three message bodies written one after another
// and separated by a line holding exactly "---":
//
//	# goal
//	int32 x
//	---
//	# result
//	bool success
//	---
//	# feedback
//	Header header
//
// The parser drops comments (everything from '#' to the end of the line)
// and lines left blank, keeps the rest of each line as written, splits the rest into the Goal, Result and Feedback
// sections by position, and expands any line mentioning "Header" into the
// fully qualified std_msgs/Header field. Field lines are otherwise kept
// verbatim; no type checking is done here.
//
// A missing separator is accepted and simply leaves the trailing sections
// empty. A third separator is a *FormatError.
package actiondef
