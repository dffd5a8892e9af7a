package deck

import (
	"fmt"
	"strings"
)

// StructureError reports a heading tree the builder cannot turn into slides,
// such as a level-3 heading directly under a level-1 heading.
type StructureError struct {
	Path  []string // headings from the top level down to the offending node
	Level int
	Msg   string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structure error at %q (level %d): %s", strings.Join(e.Path, " > "), e.Level, e.Msg)
}

// AssemblyError reports a filename that is still taken after the collision
// suffix was applied.
type AssemblyError struct {
	Path     []string
	Filename string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assembly error at %q: filename %s already assigned", strings.Join(e.Path, " > "), e.Filename)
}
