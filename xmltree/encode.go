package xmltree

import (
	"encoding/json"
	"encoding/xml"

	"gopkg.in/yaml.v3"
)

// MarshalXML implements xml.Marshaler. The start element chosen by the
// caller is ignored; the element's own name is used.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}

	for _, c := range e.children {
		if err := c.MarshalXML(enc, xml.StartElement{}); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

type jsonElement struct {
	Name     string     `json:"name"`
	Attrs    []Attr     `json:"attrs,omitempty"`
	Text     string     `json:"text,omitempty"`
	Children []*Element `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler. Attributes are emitted as an
// ordered list so document order survives the round trip.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonElement{
		Name:     e.name,
		Attrs:    e.attrs,
		Text:     e.text,
		Children: e.children,
	})
}

// MarshalYAML implements yaml.Marshaler using an explicit node tree, which
// keeps attributes and children in document order.
func (e *Element) MarshalYAML() (any, error) {
	return e.yamlNode(), nil
}

func (e *Element) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content, scalar("name"), scalar(e.name))

	if len(e.attrs) > 0 {
		attrs := &yaml.Node{Kind: yaml.MappingNode}
		for _, a := range e.attrs {
			attrs.Content = append(attrs.Content, scalar(a.Name), scalar(a.Value))
		}
		n.Content = append(n.Content, scalar("attrs"), attrs)
	}

	if e.text != "" {
		n.Content = append(n.Content, scalar("text"), scalar(e.text))
	}

	if len(e.children) > 0 {
		children := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range e.children {
			children.Content = append(children.Content, c.yamlNode())
		}
		n.Content = append(n.Content, scalar("children"), children)
	}

	return n
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
