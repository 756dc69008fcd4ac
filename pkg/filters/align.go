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

package filters

import (
	"gonum.org/v1/gonum/spatial/r3"
	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
)

// Rigid alignment of a moving mesh onto a reference mesh
type alignPlug struct {
	plug
}

func init() {
	RegisterPlug(&alignPlug{plug{name: "align", version: "0.0.1"}})
}

func (p *alignPlug) DefaultParameters(md spec.MeshDocument) *spec.RichParameterList {
	moving := currentMeshID(md)
	if m, err := spec.MeshAt(md, 1); err == nil {
		moving = m.ID()
	}
	return mustList(
		spec.NewRichMesh("Reference", currentMeshID(md), "Reference mesh", "The mesh that stays still"),
		spec.NewRichMesh("Moving", moving, "Moving mesh", "The mesh that is transformed"),
		spec.NewRichPosition("Pivot", r3.Vec{}, "Rotation pivot", "Center of the allowed rotation"),
		spec.NewRichDirection("Axis", r3.Vec{Z: 1}, "Rotation axis", "Rotations are restricted to this axis"),
		spec.NewRichFloat("MinDistAbs", 10, "Minimal starting distance", "For all the chosen sample on one mesh it is possible to choose a point on the other mesh only if it is closer than this distance"),
		spec.NewRichDynamicFloat("TrimFraction", 0.25, 0, 1, "Sample cut high", "Fraction of the farthest samples discarded each iteration", spec.WithCategory("Advanced")),
		spec.NewRichShot("Camera", spec.IdentityShot(), "Viewpoint", "Camera used to pick correspondences", spec.WithHidden()),
	)
}
