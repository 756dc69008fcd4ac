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

package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful"
	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
	"knative.dev/richparam/pkg/filters"
	"knative.dev/richparam/pkg/filterscript"
	"knative.dev/richparam/pkg/presets"
	pi "knative.dev/richparam/pkg/pluginterfaces"
)

const maxScriptSize = 1 << 20

// reply to a PUT of filter parameters
type putReply struct {
	Filter   string           `json:"filter"`
	Changed  bool             `json:"changed"`
	Report   spec.MergeReport `json:"report"`
	Problems []string         `json:"problems,omitempty"`
}

// parameter service of a single namespace
type paramService struct {
	store *presets.Store
	ns    string
}

func (p *paramService) webService() *restful.WebService {
	ws := new(restful.WebService)
	ws.Path("/").
		Consumes(restful.MIME_XML).
		Produces(restful.MIME_XML, restful.MIME_JSON)

	name := ws.PathParameter("name", "registered filter name").DataType("string")
	ws.Route(ws.GET("/filters").To(p.listFilters).
		Doc("list the registered filters").
		Produces(restful.MIME_JSON))
	ws.Route(ws.GET("/filters/{name}/parameters").To(p.getParameters).
		Doc("filter script with the defaults of the filter merged with its preset").
		Param(name).
		Param(ws.QueryParameter("descriptions", "include descriptions and tooltips").DataType("boolean")))
	ws.Route(ws.PUT("/filters/{name}/parameters").To(p.putParameters).
		Doc("store the preset of the filter from a filter script").
		Param(name).
		Produces(restful.MIME_JSON))
	ws.Route(ws.DELETE("/filters/{name}/parameters").To(p.deleteParameters).
		Doc("forget the preset of the filter").
		Param(name))
	return ws
}

func (p *paramService) plug(req *restful.Request, resp *restful.Response) filters.FilterPlug {
	name := req.PathParameter("name")
	plug := filters.GetPlugByName(name)
	if plug == nil {
		pi.Log.Debugf("unknown filter %s", name)
		resp.WriteErrorString(http.StatusNotFound, fmt.Sprintf("filter %s not found", name))
	}
	return plug
}

func (p *paramService) listFilters(req *restful.Request, resp *restful.Response) {
	resp.WriteAsJson(filters.PlugNames())
}

func (p *paramService) getParameters(req *restful.Request, resp *restful.Response) {
	plug := p.plug(req, resp)
	if plug == nil {
		return
	}
	descriptions := false
	if str := req.QueryParameter("descriptions"); str != "" {
		var err error
		if descriptions, err = strconv.ParseBool(str); err != nil {
			resp.WriteErrorString(http.StatusBadRequest, fmt.Sprintf("descriptions %q is not a bool", str))
			return
		}
	}

	params, _, err := p.store.Configure(req.Request.Context(), p.ns, plug.PlugName(), nil)
	if err != nil {
		resp.WriteErrorString(http.StatusInternalServerError, err.Error())
		return
	}
	var script filterscript.Script
	script.Add(plug.PlugName(), filters.Savable(params))
	data, err := script.Marshal(descriptions)
	if err != nil {
		pi.Log.Infof("filter %s: %v", plug.PlugName(), err)
		resp.WriteErrorString(http.StatusInternalServerError, err.Error())
		return
	}
	resp.AddHeader("Content-Type", restful.MIME_XML)
	resp.Write(data)
}

func (p *paramService) putParameters(req *restful.Request, resp *restful.Response) {
	plug := p.plug(req, resp)
	if plug == nil {
		return
	}
	data, err := io.ReadAll(io.LimitReader(req.Request.Body, maxScriptSize))
	if err != nil {
		resp.WriteErrorString(http.StatusBadRequest, err.Error())
		return
	}
	script, err := filterscript.Parse(data)
	if err != nil {
		resp.WriteErrorString(http.StatusBadRequest, err.Error())
		return
	}
	saved, ok := script.Lookup(plug.PlugName())
	if !ok {
		resp.WriteErrorString(http.StatusBadRequest, fmt.Sprintf("script has no filter %s", plug.PlugName()))
		return
	}

	params, report := filters.Configure(plug, nil, saved)
	reply := putReply{
		Filter:  plug.PlugName(),
		Changed: p.store.Put(p.ns, plug.PlugName(), filters.Savable(params)),
		Report:  report,
	}
	for _, problem := range script.Problems {
		reply.Problems = append(reply.Problems, problem.Error())
	}
	pi.Log.Debugf("put filter %s: %s", plug.PlugName(), report)
	resp.WriteAsJson(reply)
}

func (p *paramService) deleteParameters(req *restful.Request, resp *restful.Response) {
	plug := p.plug(req, resp)
	if plug == nil {
		return
	}
	if err := p.store.Delete(req.Request.Context(), p.ns, plug.PlugName()); err != nil {
		pi.Log.Infof("delete filter %s: %v", plug.PlugName(), err)
		resp.WriteErrorString(http.StatusInternalServerError, err.Error())
		return
	}
	resp.WriteHeader(http.StatusNoContent)
}
