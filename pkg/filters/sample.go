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

// Poisson disk sampling
type samplePlug struct {
	plug
}

func init() {
	RegisterPlug(&samplePlug{plug{name: "sample", version: "0.0.1"}})
}

func (p *samplePlug) DefaultParameters(md spec.MeshDocument) *spec.RichParameterList {
	return mustList(
		spec.NewRichMesh("SampledMesh", currentMeshID(md), "Mesh to be sampled", "The mesh whose surface is sampled"),
		spec.NewRichInt("SampleNum", 1000, "Number of samples", "The desired number of samples. The radius of the disk is calculated according to the sampling density."),
		spec.NewRichAbsPerc("Radius", 0, 0, 100, "Explicit Radius", "If not zero this parameter override the previous parameter to allow exact radius specification"),
		spec.NewRichInt("MontecarloRate", 20, "MonterCarlo OverSampling", "The over-sampling rate that is used to generate the initial Monte Carlo samples", spec.WithCategory("Advanced")),
		spec.NewRichDynamicFloat("ExactNumTolerance", 0.005, 0, 0.1, "Tolerance", "Tolerance on the number of samples", spec.WithCategory("Advanced")),
		spec.NewRichBool("Subsample", false, "Base Mesh Subsampling", "If true the original vertices of the base mesh are used as base set of points", spec.WithHidden()),
	)
}
