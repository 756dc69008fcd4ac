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

var exportFormats = []string{"ASCII", "Binary Little Endian", "Binary Big Endian"}

type exportPlug struct {
	plug
}

func init() {
	RegisterPlug(&exportPlug{plug{name: "export", version: "0.0.1"}})
}

func (p *exportPlug) DefaultParameters(md spec.MeshDocument) *spec.RichParameterList {
	return mustList(
		spec.NewRichSaveFile("FileName", "mesh.ply", "*.ply", "File name", "Where the mesh is written"),
		spec.NewRichEnum("Format", 1, exportFormats, "Format", "Encoding of the written file"),
		spec.NewRichString("Comment", "", "Comment", "Written in the file header"),
		spec.NewRichOpenFile("Texture", "", []string{"*.png", "*.jpg"}, "Texture", "Optional texture copied next to the mesh", spec.WithCategory("Texture")),
	)
}
