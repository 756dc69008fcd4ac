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

import "knative.dev/richparam/pkg/xmldoc"

//////////////////// RichFloat ////////////////

// Exposes RichParameter interface
type RichFloat struct {
	richParameter
}

func NewRichFloat(name string, defVal Scalar, description string, tooltip string, opts ...Option) *RichFloat {
	return &RichFloat{newRichParameter(name, NewFloatValue(defVal), description, tooltip, opts)}
}

func (r *RichFloat) Float() Scalar {
	v, _ := r.val.GetFloat()
	return v
}

func (r *RichFloat) StringType() string { return TypeRichFloat }

func (r *RichFloat) Clone() RichParameter {
	return &RichFloat{r.cloneBase()}
}

func (r *RichFloat) Equal(other RichParameter) bool {
	o, ok := other.(*RichFloat)
	return ok && o != nil && o.val.IsFloat() && r.sameAs(&o.richParameter)
}

func (r *RichFloat) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}

//////////////////// boundedFloat ////////////////

// boundedFloat is a float parameter carrying a display range
// The range is metadata only; the payload is never clamped
type boundedFloat struct {
	richParameter
	min Scalar
	max Scalar
}

func (r *boundedFloat) Float() Scalar {
	v, _ := r.val.GetFloat()
	return v
}

func (r *boundedFloat) Min() Scalar { return r.min }

func (r *boundedFloat) Max() Scalar { return r.max }

func (r *boundedFloat) cloneBounded() boundedFloat {
	return boundedFloat{richParameter: r.cloneBase(), min: r.min, max: r.max}
}

func (r *boundedFloat) fillBounded(doc *xmldoc.Document, stringType string, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	el, err := r.fillBase(doc, stringType, saveDescriptionAndTooltip)
	if err != nil {
		return nil, err
	}
	el.SetAttribute("min", FormatScalar(r.min))
	el.SetAttribute("max", FormatScalar(r.max))
	return el, nil
}

//////////////////// RichDynamicFloat ////////////////

// Exposes RichParameter interface
type RichDynamicFloat struct {
	boundedFloat
}

func NewRichDynamicFloat(name string, defVal Scalar, min Scalar, max Scalar, description string, tooltip string, opts ...Option) *RichDynamicFloat {
	return &RichDynamicFloat{boundedFloat{
		richParameter: newRichParameter(name, NewFloatValue(defVal), description, tooltip, opts),
		min:           min,
		max:           max,
	}}
}

func (r *RichDynamicFloat) StringType() string { return TypeRichDynamicFloat }

func (r *RichDynamicFloat) Clone() RichParameter {
	return &RichDynamicFloat{r.cloneBounded()}
}

func (r *RichDynamicFloat) Equal(other RichParameter) bool {
	o, ok := other.(*RichDynamicFloat)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichDynamicFloat) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBounded(doc, r.StringType(), saveDescriptionAndTooltip)
}

//////////////////// RichAbsPerc ////////////////

// Exposes RichParameter interface
// An absolute value that a widget may also present as a percentage of [min, max]
type RichAbsPerc struct {
	boundedFloat
}

func NewRichAbsPerc(name string, defVal Scalar, min Scalar, max Scalar, description string, tooltip string, opts ...Option) *RichAbsPerc {
	return &RichAbsPerc{boundedFloat{
		richParameter: newRichParameter(name, NewFloatValue(defVal), description, tooltip, opts),
		min:           min,
		max:           max,
	}}
}

// Percentage of the value within [min, max]
func (r *RichAbsPerc) Percentage() Scalar {
	if r.max == r.min {
		return 0
	}
	return 100 * (r.Float() - r.min) / (r.max - r.min)
}

func (r *RichAbsPerc) StringType() string { return TypeRichAbsPerc }

func (r *RichAbsPerc) Clone() RichParameter {
	return &RichAbsPerc{r.cloneBounded()}
}

func (r *RichAbsPerc) Equal(other RichParameter) bool {
	o, ok := other.(*RichAbsPerc)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichAbsPerc) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBounded(doc, r.StringType(), saveDescriptionAndTooltip)
}
