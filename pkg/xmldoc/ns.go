// Package xmldoc provides forward-only cursor access to parsed XML
// documents and a tree-building writer with pretty or compact
// serialization.
//
// The reader normalizes namespace prefixes through a caller-supplied
// substitution table, so documents from different vendors that declare
// arbitrary prefixes for the same namespace produce identical path and
// name strings.
package xmldoc

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Namespace is a single entry of a namespace table.
//
// The reader interprets URI as a shell-style glob pattern matched
// against the namespace URIs found in the document. The writer emits
// URI verbatim as an xmlns:Prefix declaration on the root element.
type Namespace struct {
	Prefix string
	URI    string
}

// nsRule is a Namespace with its URI pattern compiled for matching.
type nsRule struct {
	prefix  string
	pattern glob.Glob
}

// compileRules compiles the URI patterns of a namespace table.
// A nil table disables substitution and yields nil rules.
func compileRules(ns []Namespace) ([]nsRule, error) {
	if len(ns) == 0 {
		return nil, nil
	}

	rules := make([]nsRule, 0, len(ns))
	for _, n := range ns {
		g, err := glob.Compile(n.URI)
		if err != nil {
			return nil, fmt.Errorf("namespace pattern %q: %w", n.URI, err)
		}
		rules = append(rules, nsRule{prefix: n.Prefix, pattern: g})
	}

	return rules, nil
}
