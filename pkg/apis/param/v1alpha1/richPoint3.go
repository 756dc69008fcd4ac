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
	"gonum.org/v1/gonum/spatial/r3"
	"knative.dev/richparam/pkg/xmldoc"
)

//////////////////// RichPosition ////////////////

// Exposes RichParameter interface
type RichPosition struct {
	richParameter
}

func NewRichPosition(name string, defVal r3.Vec, description string, tooltip string, opts ...Option) *RichPosition {
	return &RichPosition{newRichParameter(name, NewPoint3Value(defVal), description, tooltip, opts)}
}

func (r *RichPosition) Point3() r3.Vec {
	v, _ := r.val.GetPoint3()
	return v
}

func (r *RichPosition) StringType() string { return TypeRichPosition }

func (r *RichPosition) Clone() RichParameter {
	return &RichPosition{r.cloneBase()}
}

func (r *RichPosition) Equal(other RichParameter) bool {
	o, ok := other.(*RichPosition)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichPosition) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}

//////////////////// RichDirection ////////////////

// Exposes RichParameter interface
// Same payload as RichPosition; widgets present it as a direction
type RichDirection struct {
	richParameter
}

func NewRichDirection(name string, defVal r3.Vec, description string, tooltip string, opts ...Option) *RichDirection {
	return &RichDirection{newRichParameter(name, NewPoint3Value(defVal), description, tooltip, opts)}
}

func (r *RichDirection) Point3() r3.Vec {
	v, _ := r.val.GetPoint3()
	return v
}

func (r *RichDirection) StringType() string { return TypeRichDirection }

func (r *RichDirection) Clone() RichParameter {
	return &RichDirection{r.cloneBase()}
}

func (r *RichDirection) Equal(other RichParameter) bool {
	o, ok := other.(*RichDirection)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichDirection) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}

//////////////////// RichShot ////////////////

// Exposes RichParameter interface
// FillToXMLDocument always fails with ErrNotImplemented
type RichShot struct {
	richParameter
}

func NewRichShot(name string, defVal Shot, description string, tooltip string, opts ...Option) *RichShot {
	return &RichShot{newRichParameter(name, NewShotValue(defVal), description, tooltip, opts)}
}

func (r *RichShot) Shot() Shot {
	v, _ := r.val.GetShot()
	return v
}

func (r *RichShot) StringType() string { return TypeRichShot }

func (r *RichShot) Clone() RichParameter {
	return &RichShot{r.cloneBase()}
}

func (r *RichShot) Equal(other RichParameter) bool {
	o, ok := other.(*RichShot)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichShot) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}
