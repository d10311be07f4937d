package xmldoc

import "github.com/beevik/etree"

// Format reparses a raw XML document and re-serializes it with
// two-space indentation, preserving attributes, comments and
// processing instructions. It either succeeds and returns the
// formatted document, or fails with a *ParseError and returns
// nothing.
func Format(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err}
	}

	doc.Indent(2)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return out, nil
}
