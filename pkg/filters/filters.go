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
	"sort"
	"strings"
	"sync"

	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
	paramutils "knative.dev/richparam/pkg/param-utils"
	pi "knative.dev/richparam/pkg/pluginterfaces"
)

// A filter plug declares the parameters a filter runs with
//
// The plug registers itself from an init() function
//
//	func init() { filters.RegisterPlug(&myPlug{}) }
type FilterPlug interface {
	PlugName() string
	PlugVersion() string

	// DefaultParameters returns a new list on every call
	// md is the document the filter is about to run on and may be nil
	DefaultParameters(md spec.MeshDocument) *spec.RichParameterList
}

var (
	plugs      = make(map[string]FilterPlug)
	plugsMutex sync.RWMutex
)

// RegisterPlug is called from init() function of plugs
// Names are case insensitive; a second plug with the same name replaces the first
// Presets are kept in kube resources named after the plug, plugs with illegal names are not registered
func RegisterPlug(p FilterPlug) {
	key := paramutils.Sanitize(strings.ToLower(p.PlugName()))
	if key == "" {
		pi.Log.Warnf("Filter plug name %q is illegal, plug not registered", p.PlugName())
		return
	}
	plugsMutex.Lock()
	defer plugsMutex.Unlock()
	if _, exists := plugs[key]; exists {
		pi.Log.Warnf("Filter plug %s registered twice", p.PlugName())
	}
	plugs[key] = p
}

// GetPlugByName returns nil when no plug is registered under name
func GetPlugByName(name string) FilterPlug {
	plugsMutex.RLock()
	defer plugsMutex.RUnlock()
	return plugs[strings.ToLower(name)]
}

// PlugNames returns the registered names, sorted
func PlugNames() []string {
	plugsMutex.RLock()
	defer plugsMutex.RUnlock()
	names := make([]string, 0, len(plugs))
	for _, p := range plugs {
		names = append(names, p.PlugName())
	}
	sort.Strings(names)
	return names
}

// Configure returns the defaults of plug with the values of saved merged in
// saved may be nil
func Configure(plug FilterPlug, md spec.MeshDocument, saved *spec.RichParameterList) (*spec.RichParameterList, spec.MergeReport) {
	params := plug.DefaultParameters(md)
	report := params.Merge(saved)
	if len(report.Unknown) > 0 || len(report.Mismatched) > 0 {
		pi.LogOnce.Infof("filter %s (%s): saved parameters skipped, %s", plug.PlugName(), plug.PlugVersion(), report)
	}
	return params, report
}

// Savable returns a copy of params without the parameters that have no saved form
func Savable(params *spec.RichParameterList) *spec.RichParameterList {
	s := params.Clone()
	for _, p := range params.All() {
		if p.Value().IsShot() {
			s.Remove(p.Name())
		}
	}
	return s
}

// currentMeshID is the default of mesh parameters: the first mesh of md, or -1
func currentMeshID(md spec.MeshDocument) int {
	if m, err := spec.MeshAt(md, 0); err == nil {
		return m.ID()
	}
	return -1
}

// Mesh is a loaded mesh known by id and label
type Mesh struct {
	MeshID int
	Name   string
}

func (m Mesh) ID() int       { return m.MeshID }
func (m Mesh) Label() string { return m.Name }

// MeshList is a MeshDocument listing meshes in display order
type MeshList []Mesh

func (l MeshList) Meshes() []spec.MeshModel {
	meshes := make([]spec.MeshModel, len(l))
	for i, m := range l {
		meshes[i] = m
	}
	return meshes
}

// plug holds the name and version every builtin shares
type plug struct {
	name    string
	version string
}

func (p *plug) PlugName() string    { return p.name }
func (p *plug) PlugVersion() string { return p.version }

// mustList builds a declared list; declarations are static so a duplicate is a bug
func mustList(params ...spec.RichParameter) *spec.RichParameterList {
	l, err := spec.NewRichParameterList(params...)
	if err != nil {
		panic(err.Error())
	}
	return l
}
