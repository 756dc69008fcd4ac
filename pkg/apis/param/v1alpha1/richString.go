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
	"strconv"

	"knative.dev/richparam/pkg/xmldoc"
)

//////////////////// RichString ////////////////

// Exposes RichParameter interface
type RichString struct {
	richParameter
}

func NewRichString(name string, defVal string, description string, tooltip string, opts ...Option) *RichString {
	return &RichString{newRichParameter(name, NewStringValue(defVal), description, tooltip, opts)}
}

func (r *RichString) String() string {
	v, _ := r.val.GetString()
	return v
}

func (r *RichString) StringType() string { return TypeRichString }

func (r *RichString) Clone() RichParameter {
	return &RichString{r.cloneBase()}
}

func (r *RichString) Equal(other RichParameter) bool {
	o, ok := other.(*RichString)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichString) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}

//////////////////// RichOpenFile ////////////////

// Exposes RichParameter interface
// The value is a file name, exts filters the files a dialog offers
type RichOpenFile struct {
	richParameter
	exts []string
}

func NewRichOpenFile(name string, defVal string, exts []string, description string, tooltip string, opts ...Option) *RichOpenFile {
	return &RichOpenFile{
		richParameter: newRichParameter(name, NewStringValue(defVal), description, tooltip, opts),
		exts:          append([]string(nil), exts...),
	}
}

func (r *RichOpenFile) FileName() string {
	v, _ := r.val.GetString()
	return v
}

func (r *RichOpenFile) Exts() []string {
	return append([]string(nil), r.exts...)
}

func (r *RichOpenFile) StringType() string { return TypeRichOpenFile }

func (r *RichOpenFile) Clone() RichParameter {
	return &RichOpenFile{richParameter: r.cloneBase(), exts: r.Exts()}
}

func (r *RichOpenFile) Equal(other RichParameter) bool {
	o, ok := other.(*RichOpenFile)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichOpenFile) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	el, err := r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
	if err != nil {
		return nil, err
	}
	writeList(el, "exts", r.exts)
	return el, nil
}

//////////////////// RichSaveFile ////////////////

// Exposes RichParameter interface
type RichSaveFile struct {
	richParameter
	ext string
}

func NewRichSaveFile(name string, defVal string, ext string, description string, tooltip string, opts ...Option) *RichSaveFile {
	return &RichSaveFile{
		richParameter: newRichParameter(name, NewStringValue(defVal), description, tooltip, opts),
		ext:           ext,
	}
}

func (r *RichSaveFile) FileName() string {
	v, _ := r.val.GetString()
	return v
}

func (r *RichSaveFile) Ext() string { return r.ext }

func (r *RichSaveFile) StringType() string { return TypeRichSaveFile }

func (r *RichSaveFile) Clone() RichParameter {
	return &RichSaveFile{richParameter: r.cloneBase(), ext: r.ext}
}

func (r *RichSaveFile) Equal(other RichParameter) bool {
	o, ok := other.(*RichSaveFile)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichSaveFile) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	el, err := r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
	if err != nil {
		return nil, err
	}
	el.SetAttribute("ext", r.ext)
	return el, nil
}

// writeList stores a string list as <prefix>_cardinality and <prefix>_val<i> attributes
func writeList(el AttributeWriter, prefix string, list []string) {
	el.SetAttribute(prefix+"_cardinality", strconv.Itoa(len(list)))
	for i, s := range list {
		el.SetAttribute(prefix+"_val"+strconv.Itoa(i), s)
	}
}
