// Package xmltree parses XML documents into a small read-only element tree.
//
// The tree keeps element names, attributes and children in document order,
// and the trimmed character data of each element. Namespaces are reduced to
// local names, comments and processing instructions are dropped.
package xmltree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("xml document has no root element")

// ErrMultipleRoots is returned when a second top-level element follows the root.
var ErrMultipleRoots = errors.New("xml document has more than one root element")

// ErrTextOutsideRoot is returned for non-whitespace text before or after the root element.
var ErrTextOutsideRoot = errors.New("xml document has text outside the root element")

// Attr is a single element attribute.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element is a node of a parsed document.
type Element struct {
	name     string
	attrs    []Attr
	children []*Element
	text     string
}

// utf8BOM is skipped when it leads a document.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a complete document from r and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	br := bufio.NewReader(r)
	if lead, _ := br.Peek(len(utf8BOM)); bytes.Equal(lead, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("skipping byte order mark: %w", err)
		}
	}

	d := xml.NewDecoder(br)
	d.Strict = true
	d.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
		texts []*strings.Builder
	)

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, ErrMultipleRoots
			}

			el := &Element{name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.attrs = append(el.attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}

			stack = append(stack, el)
			texts = append(texts, &strings.Builder{})

		case xml.EndElement:
			el := stack[len(stack)-1]
			el.text = strings.TrimSpace(texts[len(texts)-1].String())

			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, ErrTextOutsideRoot
				}
				continue
			}
			texts[len(texts)-1].Write(t)
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}

	return root, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte) (*Element, error) {
	return Parse(bytes.NewReader(b))
}

// Name returns the local name of the element.
func (e *Element) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Text returns the element's own character data with surrounding
// whitespace removed. Text of child elements is not included.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// Attrs returns a copy of the element's attributes in document order.
func (e *Element) Attrs() []Attr {
	if e == nil {
		return nil
	}
	return slices.Clone(e.attrs)
}

// Attr looks up an attribute by local name.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}

	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Children returns a copy of the element's children in document order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	return slices.Clone(e.children)
}

// Child returns the first child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}

	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}

	return nil
}

// ChildrenNamed returns every child with the given name, in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	if e == nil {
		return nil
	}

	var out []*Element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}

	return out
}

// Find follows path through first-matching children and returns the
// element it ends on, or nil if any step is missing. An empty path returns e.
func (e *Element) Find(path ...string) *Element {
	cur := e
	for _, name := range path {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}

	return cur
}

// Walk visits e and its descendants depth-first in document order.
// Returning false from fn skips the children of that element.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(*Element, int) bool, depth int) {
	if e == nil {
		return
	}

	if !fn(e, depth) {
		return
	}

	for _, c := range e.children {
		c.walk(fn, depth+1)
	}
}

// String re-encodes the element as compact XML.
func (e *Element) String() string {
	if e == nil {
		return ""
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(e); err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}

	return buf.String()
}
