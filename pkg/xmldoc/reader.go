package xmldoc

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Reader is a forward-only, depth-aware cursor over a parsed XML
// document.
//
// The cursor visits element nodes only; text, comment and processing
// instruction nodes are transparent. A Reader is a single-owner object
// with no internal synchronization.
type Reader struct {
	doc     *etree.Document   // Parsed document, owned by the reader
	node    *etree.Element    // Current node, nil at end of siblings
	parent  *etree.Element    // Node whose children are being iterated
	name    string            // Name of the current node
	path    []byte            // Path to the current node, /-separated
	pathlen []int             // Stack of path lengths, one per depth
	value   *string           // Cached value of the current node
	depth   int               // Depth of the current node, 0 for root
	rules   []nsRule          // Namespace substitution rules
	cache   map[string]string // URI to prefix, filled on first match
}

// NewReader parses data and returns a reader positioned at the
// document element.
//
// The ns table, if not nil, holds namespace substitution rules: the
// URI of each entry is a glob pattern, and the first entry whose
// pattern matches a namespace URI found in the document supplies the
// prefix used in names and paths. A nil table leaves the document's
// own prefixes in effect.
//
// A *ParseError is returned if data is not well-formed XML.
func NewReader(data []byte, ns []Namespace) (*Reader, error) {
	rules, err := compileRules(ns)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: errNoRootElement}
	}

	r := &Reader{
		doc:     doc,
		node:    root,
		pathlen: make([]int, 0, 8),
		rules:   rules,
	}
	r.switched()

	return r, nil
}

// Close releases the parsed document and all reader state. The reader
// must not be used afterwards.
func (r *Reader) Close() {
	r.doc = nil
	r.node = nil
	r.parent = nil
	r.name = ""
	r.path = nil
	r.pathlen = nil
	r.value = nil
	r.rules = nil
	r.cache = nil
}

// Depth returns the depth of the current node. The document element
// is at depth 0.
func (r *Reader) Depth() int {
	return r.depth
}

// End reports whether the cursor has advanced past the last element
// at the current level.
func (r *Reader) End() bool {
	return r.node == nil
}

// Next advances the cursor to the next sibling element.
func (r *Reader) Next() {
	if r.node != nil {
		r.node = nextElem(r.node.Parent(), r.node.Index()+1)
		r.switched()
	}
}

// Enter descends into the children of the current node. If the node
// has no element children the cursor is at End at the new depth.
// Enter at End is a no-op.
func (r *Reader) Enter() {
	if r.node == nil {
		return
	}

	// Save the current path length into the pathlen stack.
	r.pathlen = append(r.pathlen[:r.depth], len(r.path))

	r.parent = r.node
	r.node = nextElem(r.parent, 0)
	r.depth++
	r.switched()
}

// Leave ascends to the parent node. Leave at depth 0 is a no-op.
func (r *Reader) Leave() {
	if r.depth == 0 {
		return
	}

	r.depth--
	r.node = r.parent
	if r.node != nil {
		r.parent = r.node.Parent()
	}
	r.switched()
}

// DeepNext advances the cursor in pre-order, descending into every
// node. When a level is exhausted it leaves and advances until either
// a sibling is found or the depth drops back to floor, at which point
// the traversal stops (End becomes true at depth floor).
func (r *Reader) DeepNext(floor int) {
	r.Enter()

	for r.End() && r.depth > floor+1 {
		r.Leave()
		r.Next()
	}
}

// Name returns the name of the current node as "prefix:localname",
// with the prefix resolved through the substitution table. It returns
// "" at End.
//
// The returned string stays valid after the cursor moves.
func (r *Reader) Name() string {
	return r.name
}

// Path returns the full path to the current node, /-separated,
// starting with "/" at the document element. It returns "" at End.
func (r *Reader) Path() string {
	if r.node == nil {
		return ""
	}
	return string(r.path)
}

// NameMatches reports whether the name of the current node equals
// pattern. It is false at End.
func (r *Reader) NameMatches(pattern string) bool {
	return r.node != nil && r.name == pattern
}

// Value returns the textual value of the current node: the
// concatenated text of the node and its descendants with leading and
// trailing whitespace stripped. The value is computed once per cursor
// position and cached until the cursor moves.
func (r *Reader) Value() string {
	if r.value == nil && r.node != nil {
		v := strings.TrimSpace(collectText(r.node))
		r.value = &v
	}

	if r.value == nil {
		return ""
	}
	return *r.value
}

// ValueUint parses the value of the current node as a base-10
// unsigned integer. It returns an *InvalidValueError, naming the
// node, if the value is empty, contains non-numeric characters, is
// negative, or does not fit into 32 bits.
func (r *Reader) ValueUint() (uint, error) {
	v, err := strconv.ParseUint(r.Value(), 10, 32)
	if err != nil {
		return 0, &InvalidValueError{Name: r.name}
	}
	return uint(v), nil
}

// switched recomputes the reader state after every cursor move: it
// drops the cached value and rebuilds the tail of the path string.
func (r *Reader) switched() {
	r.value = nil

	base := 0
	if r.depth > 0 {
		base = r.pathlen[r.depth-1]
	}
	r.path = r.path[:base]

	if r.node == nil {
		r.name = ""
		return
	}

	r.path = append(r.path, '/')
	if uri := r.node.NamespaceURI(); uri != "" {
		if prefix := r.substPrefix(r.node.Space, uri); prefix != "" {
			r.path = append(r.path, prefix...)
			r.path = append(r.path, ':')
		}
	}
	r.path = append(r.path, r.node.Tag...)

	r.name = string(r.path[base+1:])
}

// substPrefix resolves the canonical prefix for a namespace URI. If
// substitution is not set up, or no rule matches, the document's own
// prefix is returned.
func (r *Reader) substPrefix(prefix, uri string) string {
	if r.rules == nil {
		return prefix
	}

	if p, ok := r.cache[uri]; ok {
		return p
	}

	for _, rule := range r.rules {
		if rule.pattern.Match(uri) {
			if r.cache == nil {
				r.cache = make(map[string]string)
			}
			r.cache[uri] = rule.prefix
			return rule.prefix
		}
	}

	// No rule matched; fall back to the document's prefix. The miss
	// is not cached, so the prefix tracks the document's own
	// declarations.
	return prefix
}

// nextElem returns the first element among parent's children starting
// at child index i, or nil if there is none.
func nextElem(parent *etree.Element, i int) *etree.Element {
	if parent == nil {
		return nil
	}

	for ; i < len(parent.Child); i++ {
		if el, ok := parent.Child[i].(*etree.Element); ok {
			return el
		}
	}
	return nil
}

// collectText concatenates the character data of an element and all
// of its descendants, in document order.
func collectText(el *etree.Element) string {
	var sb strings.Builder
	appendText(&sb, el)
	return sb.String()
}

func appendText(sb *strings.Builder, el *etree.Element) {
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			appendText(sb, t)
		}
	}
}
