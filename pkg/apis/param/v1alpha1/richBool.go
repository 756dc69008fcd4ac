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

//////////////////// RichBool ////////////////

// Exposes RichParameter interface
type RichBool struct {
	richParameter
}

func NewRichBool(name string, defVal bool, description string, tooltip string, opts ...Option) *RichBool {
	return &RichBool{newRichParameter(name, NewBoolValue(defVal), description, tooltip, opts)}
}

func (r *RichBool) Bool() bool {
	v, _ := r.val.GetBool()
	return v
}

func (r *RichBool) StringType() string { return TypeRichBool }

func (r *RichBool) Clone() RichParameter {
	return &RichBool{r.cloneBase()}
}

func (r *RichBool) Equal(other RichParameter) bool {
	o, ok := other.(*RichBool)
	return ok && o != nil && o.val.IsBool() && r.sameAs(&o.richParameter)
}

func (r *RichBool) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}
