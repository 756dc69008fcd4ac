/*
Copyright 2022 The Knative Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// This package is a small attribute-oriented DOM
// Elements keep their attributes in insertion order so that written documents are deterministic

type Attr struct {
	Name  string
	Value string
}

type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

type Document struct {
	DocType string
	Root    *Element
}

func NewDocument(docType string) *Document {
	return &Document{DocType: docType}
}

// CreateElement returns a detached element owned by the caller
func (doc *Document) CreateElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttribute adds the attribute or overwrites its value while keeping its position
func (e *Element) SetAttribute(name string, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

func (e *Element) ChildrenNamed(name string) []*Element {
	var children []*Element
	for _, c := range e.Children {
		if c.Name == name {
			children = append(children, c)
		}
	}
	return children
}

// Marshal writes the document using a one space indent
func (doc *Document) Marshal() ([]byte, error) {
	if doc.Root == nil {
		return nil, errors.New("xmldoc: document has no root element")
	}
	var buf bytes.Buffer
	if doc.DocType != "" {
		fmt.Fprintf(&buf, "<!DOCTYPE %s>\n", doc.DocType)
	}
	enc := xml.NewEncoder(&buf)
	enc.Indent("", " ")
	if err := doc.Root.encode(enc); err != nil {
		return nil, fmt.Errorf("xmldoc: encode %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("xmldoc: flush %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Parse reads a document; character data and comments are ignored
func Parse(r io.Reader) (*Document, error) {
	doc := new(Document)
	dec := xml.NewDecoder(r)
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmldoc: parse %w", err)
		}
		switch t := tok.(type) {
		case xml.Directive:
			d := strings.TrimSpace(string(t))
			if strings.HasPrefix(d, "DOCTYPE") {
				doc.DocType = strings.TrimSpace(strings.TrimPrefix(d, "DOCTYPE"))
			}
		case xml.StartElement:
			e := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, errors.New("xmldoc: parse multiple root elements")
				}
				doc.Root = e
			} else {
				stack[len(stack)-1].AppendChild(e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if doc.Root == nil {
		return nil, errors.New("xmldoc: parse no root element")
	}
	return doc, nil
}
