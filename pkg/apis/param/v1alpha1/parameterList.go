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

package v1alpha1

import (
	"fmt"

	"github.com/zeebo/xxh3"
	"gonum.org/v1/gonum/spatial/r3"
	pi "knative.dev/richparam/pkg/pluginterfaces"
	"knative.dev/richparam/pkg/xmldoc"
)

// RichParameterList is an insertion ordered collection of parameters keyed by name
// Insertion order is the display order
// A list is owned by a single filter invocation and is not safe for concurrent writers
type RichParameterList struct {
	params []RichParameter
	index  map[string]int
}

func NewRichParameterList(params ...RichParameter) (*RichParameterList, error) {
	l := new(RichParameterList)
	for _, p := range params {
		if err := l.Add(p); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add appends p; a name already in the list is rejected and the list is unchanged
func (l *RichParameterList) Add(p RichParameter) error {
	if p == nil {
		return fmt.Errorf("%w: nil parameter", ErrMalformed)
	}
	if l.index == nil {
		l.index = make(map[string]int, 8)
	}
	if _, exists := l.index[p.Name()]; exists {
		return fmt.Errorf("parameter %s: %w", p.Name(), ErrDuplicateName)
	}
	l.index[p.Name()] = len(l.params)
	l.params = append(l.params, p)
	return nil
}

func (l *RichParameterList) Len() int {
	return len(l.params)
}

func (l *RichParameterList) At(i int) RichParameter {
	return l.params[i]
}

// All returns the parameters in display order
func (l *RichParameterList) All() []RichParameter {
	return append([]RichParameter(nil), l.params...)
}

func (l *RichParameterList) Has(name string) bool {
	_, ok := l.index[name]
	return ok
}

func (l *RichParameterList) Remove(name string) bool {
	i, ok := l.index[name]
	if !ok {
		return false
	}
	l.params = append(l.params[:i], l.params[i+1:]...)
	delete(l.index, name)
	for j := i; j < len(l.params); j++ {
		l.index[l.params[j].Name()] = j
	}
	return true
}

func (l *RichParameterList) Get(name string) (RichParameter, error) {
	i, ok := l.index[name]
	if !ok {
		pi.Log.Debugf("parameter %s not found", name)
		return nil, fmt.Errorf("parameter %s: %w", name, ErrNotFound)
	}
	return l.params[i], nil
}

// Lookup returns the parameter called name when it is a T
func Lookup[T RichParameter](l *RichParameterList, name string) (T, error) {
	var zero T
	p, err := l.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := p.(T)
	if !ok {
		pi.Log.Debugf("parameter %s has type %s", name, p.StringType())
		return zero, fmt.Errorf("parameter %s: %w: has type %s", name, ErrTypeMismatch, p.StringType())
	}
	return t, nil
}

func (l *RichParameterList) value(name string) (Value, error) {
	p, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return p.Value(), nil
}

func wrapName(name string, err error) error {
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	return nil
}

func (l *RichParameterList) GetBool(name string) (bool, error) {
	v, err := l.value(name)
	if err != nil {
		return false, err
	}
	b, err := v.GetBool()
	return b, wrapName(name, err)
}

func (l *RichParameterList) GetInt(name string) (int, error) {
	v, err := l.value(name)
	if err != nil {
		return 0, err
	}
	i, err := v.GetInt()
	return i, wrapName(name, err)
}

func (l *RichParameterList) GetFloat(name string) (Scalar, error) {
	v, err := l.value(name)
	if err != nil {
		return 0, err
	}
	f, err := v.GetFloat()
	return f, wrapName(name, err)
}

func (l *RichParameterList) GetPoint3(name string) (r3.Vec, error) {
	v, err := l.value(name)
	if err != nil {
		return r3.Vec{}, err
	}
	p, err := v.GetPoint3()
	return p, wrapName(name, err)
}

func (l *RichParameterList) GetShot(name string) (Shot, error) {
	v, err := l.value(name)
	if err != nil {
		return Shot{}, err
	}
	s, err := v.GetShot()
	return s, wrapName(name, err)
}

func (l *RichParameterList) GetString(name string) (string, error) {
	v, err := l.value(name)
	if err != nil {
		return "", err
	}
	s, err := v.GetString()
	return s, wrapName(name, err)
}

// SetValue overwrites the payload of the named parameter
func (l *RichParameterList) SetValue(name string, v Value) error {
	p, err := l.Get(name)
	if err != nil {
		return err
	}
	return p.SetValue(v)
}

// ValueEditor is implemented by widgets able to produce the value a user edited
type ValueEditor interface {
	EditedValue() (Value, error)
}

// ApplyEdit writes the value held by a widget back into the named parameter
func (l *RichParameterList) ApplyEdit(name string, editor ValueEditor) error {
	p, err := l.Get(name)
	if err != nil {
		return err
	}
	v, err := editor.EditedValue()
	if err != nil {
		return fmt.Errorf("parameter %s: widget %w", name, err)
	}
	return p.SetValue(v)
}

// MergeReport lists what Merge did with each entry of the merged list
type MergeReport struct {
	Applied    []string // value copied
	Unknown    []string // no parameter with this name
	Mismatched []string // same name, different StringType
}

func (r MergeReport) String() string {
	return fmt.Sprintf("applied %d, unknown %v, mismatched %v", len(r.Applied), r.Unknown, r.Mismatched)
}

// Merge copies the values of other onto parameters with the same name and StringType
// Only values are copied; metadata stays as declared
// Entries of other that do not match are skipped, parameters with no match keep their value
func (l *RichParameterList) Merge(other *RichParameterList) MergeReport {
	var report MergeReport
	if other == nil {
		return report
	}
	for _, o := range other.params {
		i, ok := l.index[o.Name()]
		if !ok {
			pi.LogOnce.Debugf("merge skips unknown parameter %s", o.Name())
			report.Unknown = append(report.Unknown, o.Name())
			continue
		}
		p := l.params[i]
		if p.StringType() != o.StringType() {
			pi.LogOnce.Debugf("merge skips parameter %s: saved %s, declared %s", o.Name(), o.StringType(), p.StringType())
			report.Mismatched = append(report.Mismatched, o.Name())
			continue
		}
		if err := p.SetValue(o.Value()); err != nil {
			pi.LogOnce.Debugf("merge skips parameter %s: %v", o.Name(), err)
			report.Mismatched = append(report.Mismatched, o.Name())
			continue
		}
		report.Applied = append(report.Applied, o.Name())
	}
	return report
}

// Equal is true when both lists hold equal parameters under the same names, in any order
func (l *RichParameterList) Equal(other *RichParameterList) bool {
	if other == nil || len(l.params) != len(other.params) {
		return false
	}
	for _, p := range l.params {
		i, ok := other.index[p.Name()]
		if !ok || !p.Equal(other.params[i]) {
			return false
		}
	}
	return true
}

func (l *RichParameterList) Clone() *RichParameterList {
	c := &RichParameterList{
		params: make([]RichParameter, len(l.params)),
		index:  make(map[string]int, len(l.params)),
	}
	for i, p := range l.params {
		c.params[i] = p.Clone()
		c.index[p.Name()] = i
	}
	return c
}

// Visible returns the parameters a dialog shows, in display order
func (l *RichParameterList) Visible() []RichParameter {
	var visible []RichParameter
	for _, p := range l.params {
		if !p.IsHidden() {
			visible = append(visible, p)
		}
	}
	return visible
}

type CategoryGroup struct {
	Category string
	Params   []RichParameter
}

// Categories groups the visible parameters by category
// Groups are ordered by the first appearance of their category
func (l *RichParameterList) Categories() []CategoryGroup {
	var groups []CategoryGroup
	pos := make(map[string]int, 4)
	for _, p := range l.Visible() {
		i, ok := pos[p.Category()]
		if !ok {
			i = len(groups)
			pos[p.Category()] = i
			groups = append(groups, CategoryGroup{Category: p.Category()})
		}
		groups[i].Params = append(groups[i].Params, p)
	}
	return groups
}

// attrCollector gathers the attributes a Value writes
type attrCollector []xmldoc.Attr

func (c *attrCollector) SetAttribute(name string, value string) {
	*c = append(*c, xmldoc.Attr{Name: name, Value: value})
}

// Fingerprint hashes names, types and payloads in display order; metadata is ignored
func (l *RichParameterList) Fingerprint() uint64 {
	h := xxh3.New()
	for _, p := range l.params {
		h.WriteString(p.Name())
		h.WriteString("\x00")
		h.WriteString(p.StringType())
		h.WriteString("\x00")
		var attrs attrCollector
		if err := p.Value().WriteToXMLElement(&attrs); err != nil {
			// no saved form, hash the payload itself
			shot, _ := p.Value().GetShot()
			h.WriteString(fmt.Sprintf("%v", shot))
		}
		for _, a := range attrs {
			h.WriteString(a.Name)
			h.WriteString("=")
			h.WriteString(a.Value)
			h.WriteString("\x00")
		}
		h.WriteString("\x01")
	}
	return h.Sum64()
}

// FillToXMLElement appends a Param element per parameter to parent
// On failure parent is left untouched
func (l *RichParameterList) FillToXMLElement(doc *xmldoc.Document, parent *xmldoc.Element, saveDescriptionAndTooltip bool) error {
	children := make([]*xmldoc.Element, 0, len(l.params))
	for _, p := range l.params {
		el, err := p.FillToXMLDocument(doc, saveDescriptionAndTooltip)
		if err != nil {
			return err
		}
		children = append(children, el)
	}
	for _, el := range children {
		parent.AppendChild(el)
	}
	return nil
}

// ParseRichParameterList reads the Param children of parent
// Entries that cannot be read are skipped and returned as problems
func ParseRichParameterList(parent *xmldoc.Element) (*RichParameterList, []error) {
	var problems []error
	l := new(RichParameterList)
	for _, el := range parent.ChildrenNamed(ParamElement) {
		p, err := ParseRichParameter(el)
		if err == nil {
			err = l.Add(p)
		}
		if err != nil {
			pi.Log.Debugf("skip saved parameter: %v", err)
			problems = append(problems, err)
		}
	}
	return l, problems
}
