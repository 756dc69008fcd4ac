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

	"knative.dev/richparam/pkg/xmldoc"
)

// Type discriminants are written to saved scripts and must never change
const (
	TypeRichBool         = "RichBool"
	TypeRichInt          = "RichInt"
	TypeRichFloat        = "RichFloat"
	TypeRichString       = "RichString"
	TypeRichPosition     = "RichPosition"
	TypeRichDirection    = "RichDirection"
	TypeRichShot         = "RichShot"
	TypeRichDynamicFloat = "RichDynamicFloat"
	TypeRichAbsPerc      = "RichAbsPerc"
	TypeRichEnum         = "RichEnum"
	TypeRichOpenFile     = "RichOpenFile"
	TypeRichSaveFile     = "RichSaveFile"
	TypeRichMesh         = "RichMesh"
)

// ParamElement is the xml element name of a saved parameter
const ParamElement = "Param"

// A RichParameter pairs an owned Value with the metadata needed to present it
// The set of implementations is closed
type RichParameter interface {
	// Name is the lookup key of the parameter
	Name() string

	// Value returns the owned value; edits made through it affect the parameter
	Value() Value

	// SetValue copies the payload of v, v must be of the same kind as Value()
	SetValue(v Value) error

	Description() string
	SetDescription(description string)
	Tooltip() string
	SetTooltip(tooltip string)
	IsHidden() bool
	SetHidden(hidden bool)
	Category() string
	SetCategory(category string)

	// StringType is a fixed discriminant per concrete type
	StringType() string

	// Clone returns a deep copy, including a cloned Value
	Clone() RichParameter

	// Equal is true for the same concrete type, the same name and an equal payload
	// Description, tooltip, hidden and category are ignored
	Equal(other RichParameter) bool

	// FillToXMLDocument creates a Param element describing the parameter
	FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error)

	richI()
}

type Option func(r *richParameter)

// WithHidden keeps the parameter out of the default dialog
func WithHidden() Option {
	return func(r *richParameter) {
		r.hidden = true
	}
}

func WithCategory(category string) Option {
	return func(r *richParameter) {
		r.category = category
	}
}

// richParameter holds the state shared by all parameter types
type richParameter struct {
	name        string
	val         Value
	description string
	tooltip     string
	hidden      bool
	category    string
}

func newRichParameter(name string, val Value, description string, tooltip string, opts []Option) richParameter {
	r := richParameter{
		name:        name,
		val:         val,
		description: description,
		tooltip:     tooltip,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *richParameter) richI() {}

func (r *richParameter) Name() string { return r.name }

func (r *richParameter) Value() Value { return r.val }

func (r *richParameter) SetValue(v Value) error {
	if v == nil {
		return fmt.Errorf("parameter %s: %w: nil value", r.name, ErrTypeMismatch)
	}
	if err := r.val.Set(v); err != nil {
		return fmt.Errorf("parameter %s: %w", r.name, err)
	}
	return nil
}

func (r *richParameter) Description() string { return r.description }

func (r *richParameter) SetDescription(description string) { r.description = description }

func (r *richParameter) Tooltip() string { return r.tooltip }

func (r *richParameter) SetTooltip(tooltip string) { r.tooltip = tooltip }

func (r *richParameter) IsHidden() bool { return r.hidden }

func (r *richParameter) SetHidden(hidden bool) { r.hidden = hidden }

func (r *richParameter) Category() string { return r.category }

func (r *richParameter) SetCategory(category string) { r.category = category }

func (r *richParameter) cloneBase() richParameter {
	c := *r
	c.val = r.val.Clone()
	return c
}

func (r *richParameter) sameAs(other *richParameter) bool {
	return r.name == other.name && r.val.Equal(other.val)
}

// fillBase writes the attributes common to every parameter type
func (r *richParameter) fillBase(doc *xmldoc.Document, stringType string, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	el := doc.CreateElement(ParamElement)
	el.SetAttribute("name", r.name)
	el.SetAttribute("type", stringType)
	if saveDescriptionAndTooltip {
		el.SetAttribute("description", r.description)
		el.SetAttribute("tooltip", r.tooltip)
	}
	if err := r.val.WriteToXMLElement(el); err != nil {
		return nil, fmt.Errorf("parameter %s: %w", r.name, err)
	}
	return el, nil
}
