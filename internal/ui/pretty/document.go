package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// DumpDocument walks a reader over the whole document and writes one
// line per leaf node, "path = value", styled. Interior nodes print
// the path alone. It returns the number of nodes visited.
func (s *Styles) DumpDocument(w io.Writer, r *xmldoc.Reader) (int, error) {
	nodes := 0

	for !r.End() {
		nodes++

		path := r.Path()
		if hasElementChildren(r) {
			if _, err := fmt.Fprintln(w, s.Path.Render(path)); err != nil {
				return nodes, err
			}
		} else {
			line := fmt.Sprintf("%s %s %s",
				s.Path.Render(path),
				s.Dim.Render("="),
				s.Value.Render(r.Value()))
			if _, err := fmt.Fprintln(w, line); err != nil {
				return nodes, err
			}
		}

		r.DeepNext(0)
	}

	return nodes, nil
}

// hasElementChildren peeks below the current node without disturbing
// the traversal position.
func hasElementChildren(r *xmldoc.Reader) bool {
	r.Enter()
	empty := r.End()
	r.Leave()
	return !empty
}
