package taxonomy

import (
	"regexp"
	"strings"

	"github.com/honeynil/headless-broker/pkg/sanitize"
)

var outlineLine = regexp.MustCompile(`^(-*)\s*(.+)$`)

// OutlineEntry is one line of a bulk insert outline. Depth is the number of leading dashes.
type OutlineEntry struct {
	Depth int
	Name  string
}

// ParseOutline reads one term per line; each leading dash nests the term one level deeper.
// Blank lines and lines whose name sanitizes to nothing are dropped.
func ParseOutline(text string) []OutlineEntry {
	var entries []OutlineEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r\v\f\x00")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := outlineLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := sanitize.Text(m[2])
		if name == "" {
			continue
		}
		entries = append(entries, OutlineEntry{Depth: len(m[1]), Name: name})
	}
	return entries
}

// DisplayName indents the name by two spaces per level, for reporting inserted terms.
func (e OutlineEntry) DisplayName() string {
	return strings.Repeat("  ", e.Depth) + e.Name
}
