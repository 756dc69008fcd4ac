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

// MeshModel is a loaded mesh as seen by the parameter layer
type MeshModel interface {
	ID() int
	Label() string
}

// MeshDocument supplies the ordered set of currently loaded meshes
// It is passed explicitly to every operation that needs it and never stored
type MeshDocument interface {
	Meshes() []MeshModel
}

// MeshPosition returns the display position of the mesh with the given id
func MeshPosition(md MeshDocument, id int) (int, error) {
	if md == nil {
		return -1, fmt.Errorf("mesh %d: %w: no mesh document", id, ErrNotFound)
	}
	for i, m := range md.Meshes() {
		if m.ID() == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("mesh %d: %w", id, ErrNotFound)
}

// MeshAt returns the mesh displayed at pos
func MeshAt(md MeshDocument, pos int) (MeshModel, error) {
	if md == nil {
		return nil, fmt.Errorf("mesh position %d: %w: no mesh document", pos, ErrNotFound)
	}
	meshes := md.Meshes()
	if pos < 0 || pos >= len(meshes) {
		return nil, fmt.Errorf("mesh position %d: %w", pos, ErrNotFound)
	}
	return meshes[pos], nil
}

//////////////////// RichMesh ////////////////

// Exposes RichParameter interface
// The value is a stable mesh id, not a display position
type RichMesh struct {
	richParameter
}

func NewRichMesh(name string, meshID int, description string, tooltip string, opts ...Option) *RichMesh {
	return &RichMesh{newRichParameter(name, NewIntValue(meshID), description, tooltip, opts)}
}

func (r *RichMesh) MeshID() int {
	v, _ := r.val.GetInt()
	return v
}

// Resolve finds the referenced mesh in md
func (r *RichMesh) Resolve(md MeshDocument) (MeshModel, error) {
	pos, err := MeshPosition(md, r.MeshID())
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", r.name, err)
	}
	return md.Meshes()[pos], nil
}

// Position returns where the referenced mesh is displayed in md
func (r *RichMesh) Position(md MeshDocument) (int, error) {
	pos, err := MeshPosition(md, r.MeshID())
	if err != nil {
		return -1, fmt.Errorf("parameter %s: %w", r.name, err)
	}
	return pos, nil
}

// SelectPosition stores the id of the mesh displayed at pos
func (r *RichMesh) SelectPosition(md MeshDocument, pos int) error {
	m, err := MeshAt(md, pos)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", r.name, err)
	}
	return r.SetValue(NewIntValue(m.ID()))
}

func (r *RichMesh) StringType() string { return TypeRichMesh }

func (r *RichMesh) Clone() RichParameter {
	return &RichMesh{r.cloneBase()}
}

func (r *RichMesh) Equal(other RichParameter) bool {
	o, ok := other.(*RichMesh)
	return ok && o != nil && r.sameAs(&o.richParameter)
}

func (r *RichMesh) FillToXMLDocument(doc *xmldoc.Document, saveDescriptionAndTooltip bool) (*xmldoc.Element, error) {
	return r.fillBase(doc, r.StringType(), saveDescriptionAndTooltip)
}
