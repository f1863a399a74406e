package statblock

import (
	"strings"

	"github.com/vcrini/lazynechronica/internal/enemy"
)

const (
	headerDescription = "Description:"
	headerTactics     = "Tactics:"
	headerRoleplay    = "Roleplay:"
)

// FlavorText frames the three flavor strings as one editable block.
func FlavorText(f enemy.Flavor) string {
	var b strings.Builder
	b.WriteString(headerDescription + "\n" + f.Description + "\n\n")
	b.WriteString(headerTactics + "\n" + f.Tactics + "\n\n")
	b.WriteString(headerRoleplay + "\n" + f.Roleplay)
	return b.String()
}

// ParseFlavor recovers the three strings from a framed block. A section
// starts at its header on a line of its own, either at the top of the block
// or after a blank line, and runs to the next header found. Blank lines inside
// a section stay in it. A missing or misspelt header yields "" for its field.
func ParseFlavor(text string) enemy.Flavor {
	text = strings.TrimSpace(text)
	headers := []string{headerDescription, headerTactics, headerRoleplay}
	starts := make([]int, len(headers))
	from := 0
	for i, h := range headers {
		starts[i] = findHeader(text, h, from)
		if starts[i] >= 0 {
			from = starts[i] + len(h)
		}
	}

	bodies := make([]string, len(headers))
	for i, h := range headers {
		if starts[i] < 0 {
			continue
		}
		end := len(text)
		for _, next := range starts[i+1:] {
			if next >= 0 {
				end = next
				break
			}
		}
		bodies[i] = strings.TrimSpace(text[starts[i]+len(h) : end])
	}
	return enemy.Flavor{Description: bodies[0], Tactics: bodies[1], Roleplay: bodies[2]}
}

// findHeader returns the offset of header at or after from, or -1.
func findHeader(text, header string, from int) int {
	if from == 0 && headerAt(text, 0, header) {
		return 0
	}
	sep := "\n\n" + header
	for i := from; i < len(text); {
		j := strings.Index(text[i:], sep)
		if j < 0 {
			return -1
		}
		pos := i + j + 2
		if headerAt(text, pos, header) {
			return pos
		}
		i = pos
	}
	return -1
}

func headerAt(text string, pos int, header string) bool {
	if !strings.HasPrefix(text[pos:], header) {
		return false
	}
	after := pos + len(header)
	return after == len(text) || text[after] == '\n'
}
