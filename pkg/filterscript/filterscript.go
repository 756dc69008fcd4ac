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

package filterscript

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
	"knative.dev/richparam/pkg/xmldoc"
)

// A filter script is a sequence of filter invocations with the parameters each was run with
//
//	<!DOCTYPE FilterScript>
//	<FilterScript>
//	 <filter name="...">
//	  <Param name="..." type="..." .../>
//	 </filter>
//	</FilterScript>

const (
	DocType       = "FilterScript"
	rootElement   = "FilterScript"
	filterElement = "filter"
)

var ErrNotAScript = errors.New("not a filter script")

type Entry struct {
	Name   string
	Params *spec.RichParameterList
}

type Script struct {
	Entries []Entry

	// Problems holds the saved parameters Parse skipped
	Problems []error
}

func (s *Script) Add(name string, params *spec.RichParameterList) {
	s.Entries = append(s.Entries, Entry{Name: name, Params: params})
}

// Lookup returns the parameters of the first invocation of filter name
// Filter names are case insensitive
func (s *Script) Lookup(name string) (*spec.RichParameterList, bool) {
	for _, e := range s.Entries {
		if strings.EqualFold(e.Name, name) {
			return e.Params, true
		}
	}
	return nil, false
}

func (s *Script) Marshal(saveDescriptionAndTooltip bool) ([]byte, error) {
	doc := xmldoc.NewDocument(DocType)
	root := doc.CreateElement(rootElement)
	for _, e := range s.Entries {
		el := doc.CreateElement(filterElement)
		el.SetAttribute("name", e.Name)
		if e.Params != nil {
			if err := e.Params.FillToXMLElement(doc, el, saveDescriptionAndTooltip); err != nil {
				return nil, fmt.Errorf("filter %s: %w", e.Name, err)
			}
		}
		root.AppendChild(el)
	}
	doc.Root = root
	return doc.Marshal()
}

// Parse reads a filter script
// Unreadable parameters are skipped and listed in Problems, the rest of the script is kept
func Parse(data []byte) (*Script, error) {
	doc, err := xmldoc.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if doc.Root.Name != rootElement {
		return nil, fmt.Errorf("%w: root element %s", ErrNotAScript, doc.Root.Name)
	}
	s := new(Script)
	for _, el := range doc.Root.ChildrenNamed(filterElement) {
		name, ok := el.Attribute("name")
		if !ok || name == "" {
			s.Problems = append(s.Problems, fmt.Errorf("%w: filter without a name", spec.ErrMalformed))
			continue
		}
		params, problems := spec.ParseRichParameterList(el)
		for _, p := range problems {
			s.Problems = append(s.Problems, fmt.Errorf("filter %s: %w", name, p))
		}
		s.Add(name, params)
	}
	return s, nil
}
