package normalize

import (
	"strings"
)

// CollapseSpace trims the input and collapses internal whitespace runs to a
// single space. Case is preserved: cadastral and registration numbers are
// case-significant, and free text is safer left alone.
func CollapseSpace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
