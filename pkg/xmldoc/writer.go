package xmldoc

import (
	"strconv"
	"strings"
)

// Attr is a single attribute of a writer node. Values are emitted
// verbatim; escaping attribute content is the caller's responsibility.
type Attr struct {
	Name  string
	Value string
}

// wrNode is a single node of the writer's document tree. A node either
// carries a textual value or children; when children are present the
// value is ignored.
type wrNode struct {
	name     string
	value    string
	attrs    []Attr
	children []*wrNode
	parent   *wrNode
}

// Writer builds an XML document as an in-memory tree and serializes
// it to text.
//
// Nodes attach as children of the current node, in call order. Enter
// descends into a newly created node, Leave returns to its parent, and
// Finish or FinishCompact produces the document string, consuming the
// writer.
type Writer struct {
	root    *wrNode // Root node, owns the entire tree
	current *wrNode // Node the next add or Enter attaches to
	ns      []Namespace
}

// NewWriter creates a writer whose document consists of a single root
// element with the given name. The ns table, if not nil, is emitted as
// xmlns declarations on the root element; URIs are taken verbatim.
func NewWriter(root string, ns []Namespace) *Writer {
	node := &wrNode{name: root}
	return &Writer{
		root:    node,
		current: node,
		ns:      ns,
	}
}

// AddText adds a child node with a textual value to the current node.
// The value is entity-escaped at serialization time.
func (w *Writer) AddText(name, value string, attrs ...Attr) {
	w.addNode(&wrNode{name: name, value: value, attrs: attrs})
}

// AddUint adds a child node whose value is v formatted in base 10.
func (w *Writer) AddUint(name string, v uint, attrs ...Attr) {
	w.AddText(name, strconv.FormatUint(uint64(v), 10), attrs...)
}

// AddBool adds a child node with the value "true" or "false".
func (w *Writer) AddBool(name string, v bool, attrs ...Attr) {
	w.AddText(name, strconv.FormatBool(v), attrs...)
}

// Enter adds a child node with no value and makes it current, so that
// subsequent nodes attach beneath it.
func (w *Writer) Enter(name string, attrs ...Attr) {
	node := &wrNode{name: name, attrs: attrs}
	w.addNode(node)
	w.current = node
}

// Leave returns the current position to the parent node. Calling
// Leave on the root element is a contract violation and panics.
func (w *Writer) Leave() {
	if w.current.parent == nil {
		panic("xmldoc: Leave called on the root element")
	}
	w.current = w.current.parent
}

// Finish serializes the document with two-space indentation and
// returns it. The writer is consumed and must not be used again.
func (w *Writer) Finish() string {
	return w.finish(false)
}

// FinishCompact is like Finish but emits no indentation or newlines.
func (w *Writer) FinishCompact() string {
	return w.finish(true)
}

func (w *Writer) finish(compact bool) string {
	var buf strings.Builder

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	if !compact {
		buf.WriteByte('\n')
	}

	w.formatNode(&buf, w.root, 0, compact)

	w.root = nil
	w.current = nil

	return buf.String()
}

// addNode attaches a node to the current node's children.
func (w *Writer) addNode(node *wrNode) {
	node.parent = w.current
	w.current.children = append(w.current.children, node)
}

// formatNode serializes a node and its children, recursively.
func (w *Writer) formatNode(buf *strings.Builder, node *wrNode, level int, compact bool) {
	if !compact {
		writeIndent(buf, level)
	}

	buf.WriteByte('<')
	buf.WriteString(node.name)
	if level == 0 {
		// The root node declares the namespaces.
		for _, ns := range w.ns {
			buf.WriteString(" xmlns:")
			buf.WriteString(ns.Prefix)
			buf.WriteString(`="`)
			buf.WriteString(ns.URI)
			buf.WriteByte('"')
		}
	}
	for _, attr := range node.attrs {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		buf.WriteString(`="`)
		buf.WriteString(attr.Value)
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	if len(node.children) != 0 {
		if !compact {
			buf.WriteByte('\n')
		}

		for _, child := range node.children {
			w.formatNode(buf, child, level+1, compact)
		}

		if !compact {
			writeIndent(buf, level)
		}

		buf.WriteString("</")
		buf.WriteString(node.name)
		buf.WriteByte('>')
		if !compact && level != 0 {
			buf.WriteByte('\n')
		}
	} else {
		escapeText(buf, node.value)
		buf.WriteString("</")
		buf.WriteString(node.name)
		buf.WriteByte('>')
		if !compact && level != 0 {
			buf.WriteByte('\n')
		}
	}
}

func writeIndent(buf *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString("  ")
	}
}
