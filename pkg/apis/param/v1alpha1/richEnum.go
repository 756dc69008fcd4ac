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

//////////////////// RichEnum ////////////////

// Exposes RichParameter interface
// The value is the index of the selected label
type RichEnum struct {
	richParameter
	labels []string
}

func NewRichEnum(name string, defVal int, labels []string, description string, tooltip string, opts ...Option) *RichEnum {
	return &RichEnum{
		richParameter: newRichParameter(name, NewIntValue(defVal), description, tooltip, opts),
		labels:        append([]string(nil), labels...),
	}
}

func (r *RichEnum) Int() int {
	v, _ := r.val.GetInt()
	return v
}

func (r *RichEnum) Labels() []string {
	return append([]string(nil), r.labels...)
}

// Selected returns the label of the current value, or false when the value is out of range
func (r *RichEnum) Selected() (string, bool) {
	i := r.Int()
	if i < 0 || i >= len(r.labels) {
		return "", false
	}
	return r.labels[i], true
}

func (r *RichEnum) StringType() string { return TypeRichEnum }

func (r *RichEnum) Clone() RichParameter {
	return &RichEnum{richParameter: r.cloneBase(), labels: r.Labels()}
}

func (r *RichEnum) Equal(other RichParameter) bool {
	o, ok := other.(*RichEnum)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichEnum) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	el, err := r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
	if err != nil {
		return nil, err
	}
	writeList(el, "enum", r.labels)
	return el, nil
}
