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

import spec "knative.dev/richparam/pkg/apis/param/v1alpha1"

// Laplacian smoothing
type smoothPlug struct {
	plug
}

func init() {
	RegisterPlug(&smoothPlug{plug{name: "smooth", version: "0.0.1"}})
}

func (p *smoothPlug) DefaultParameters(md spec.MeshDocument) *spec.RichParameterList {
	return mustList(
		spec.NewRichInt("stepSmoothNum", 3, "Smoothing steps", "The number of times that the whole algorithm (normal smoothing + vertex fitting) is iterated."),
		spec.NewRichBool("Boundary", true, "1D Boundary Smoothing", "Smooth boundary edges only by themselves."),
		spec.NewRichBool("cotangentWeight", true, "Cotangent weighting", "Use cotangent weighting scheme for the averaging of the position."),
		spec.NewRichBool("Selected", false, "Affect only selection", "If checked the filter is performed only on the selected area", spec.WithCategory("Selection")),
	)
}
