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

//////////////////// RichInt ////////////////

// Exposes RichParameter interface
type RichInt struct {
	richParameter
}

func NewRichInt(name string, defVal int, description string, tooltip string, opts ...Option) *RichInt {
	return &RichInt{newRichParameter(name, NewIntValue(defVal), description, tooltip, opts)}
}

func (r *RichInt) Int() int {
	v, _ := r.val.GetInt()
	return v
}

func (r *RichInt) StringType() string { return TypeRichInt }

func (r *RichInt) Clone() RichParameter {
	return &RichInt{r.cloneBase()}
}

func (r *RichInt) Equal(other RichParameter) bool {
	o, ok := other.(*RichInt)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichInt) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}
