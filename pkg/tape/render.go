package tape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// String renders the tape report printed by the inspect instruction.
func (t *Tape) String() string {
	var sb strings.Builder

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Number of Segments: %d\n", t.ns)
	fmt.Fprintf(&sb, "Segment Pointer: %d\n", t.sp)
	fmt.Fprintf(&sb, "Frame Pointer: %d\n", t.fp)

	writeList(&sb, "Names", t.names)
	writeList(&sb, "Scope", lo.Map(t.scope, func(i int, _ int) string {
		return strconv.Itoa(i)
	}))
	writeList(&sb, "Frames", lo.Map(t.frames, func(v Value, _ int) string {
		return v.String()
	}))

	return sb.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	sb.WriteString(label + ":")
	for _, item := range items {
		sb.WriteString(" | " + item)
	}
	sb.WriteString("\n")
}
