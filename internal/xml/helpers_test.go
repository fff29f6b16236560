package xml

import (
	"regexp"
	"strings"
)

var (
	procInstRE    = regexp.MustCompile(`<\?xml[^>]*\?>`)
	interTagSpace = regexp.MustCompile(`>\s+<`)
)

// normalizeXML removes the declaration and whitespace between elements for
// test comparisons
func normalizeXML(s string) string {
	s = procInstRE.ReplaceAllString(s, "")
	s = interTagSpace.ReplaceAllString(s, "><")
	return strings.TrimSpace(s)
}
