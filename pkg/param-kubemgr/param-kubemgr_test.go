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

package paramkubemgr

import (
	"context"
	"reflect"
	"testing"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation"
	k8sfake "k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/rest"
	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
)

const smoothPreset = `<!DOCTYPE FilterScript>
<FilterScript>
 <filter name="smooth">
  <Param name="steps" type="RichInt" value="5"></Param>
  <Param name="boundary" type="RichBool" value="true"></Param>
 </filter>
</FilterScript>
`

func fakeGetInclusterConfig() (*rest.Config, error) {
	return nil, nil
}

func presetCm(name string, data map[string]string) *v1.ConfigMap {
	return &v1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Namespace:   "ns",
			Annotations: map[string]string{},
		},
		Data: data,
	}
}

func smoothParams(steps int, boundary bool) *spec.RichParameterList {
	l, _ := spec.NewRichParameterList(
		spec.NewRichInt("steps", steps, "", ""),
		spec.NewRichBool("boundary", boundary, "", ""),
	)
	return l
}

func TestKubeMgr_Read(t *testing.T) {
	tests := []struct {
		name       string
		kclientset *k8sfake.Clientset
		want       *spec.RichParameterList
		wantErr    bool
	}{
		{
			name:       "missing",
			kclientset: k8sfake.NewSimpleClientset(presetCm("xx_preset.smooth", nil)),
			wantErr:    true,
		},
		{
			name:       "malformed",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", nil)),
			wantErr:    true,
		},
		{
			name:       "empty preset",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", map[string]string{"Parameters": ""})),
			wantErr:    true,
		},
		{
			name:       "cant parse",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", map[string]string{"Parameters": "abc"})),
			wantErr:    true,
		},
		{
			name: "other filter",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", map[string]string{
				"Parameters": "<FilterScript><filter name=\"sample\"/></FilterScript>",
			})),
			wantErr: true,
		},
		{
			name:       "ok",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", map[string]string{"Parameters": smoothPreset})),
			want:       smoothParams(5, true),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKubeMgr()
			k.getConfigFunc = fakeGetInclusterConfig
			k.cmClient = tt.kclientset
			k.getConfigs()
			got, err := k.Read(context.Background(), "ns", "smooth")
			if (err != nil) != tt.wantErr {
				t.Errorf("KubeMgr.Read() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.want != nil && !tt.want.Equal(got) {
				t.Errorf("KubeMgr.Read() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKubeMgr_Set(t *testing.T) {
	tests := []struct {
		name       string
		kclientset *k8sfake.Clientset
	}{
		{
			name:       "create",
			kclientset: k8sfake.NewSimpleClientset(),
		},
		{
			name:       "update",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", map[string]string{"Parameters": smoothPreset})),
		},
		{
			name:       "update corrupted",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", map[string]string{"Parameters": "abc"})),
		},
		{
			name:       "update no data",
			kclientset: k8sfake.NewSimpleClientset(presetCm("preset.smooth", nil)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			k := NewKubeMgrWithClient(tt.kclientset)
			want := smoothParams(9, false)
			if err := k.Set(ctx, "ns", "smooth", want); err != nil {
				t.Fatalf("KubeMgr.Set() error = %v", err)
			}
			got, err := k.Read(ctx, "ns", "smooth")
			if err != nil {
				t.Fatalf("KubeMgr.Read() error = %v", err)
			}
			if !want.Equal(got) {
				t.Errorf("KubeMgr.Read() = %v, want %v", got, want)
			}
		})
	}
}

func TestKubeMgr_SetShot(t *testing.T) {
	k := NewKubeMgrWithClient(k8sfake.NewSimpleClientset())
	params, _ := spec.NewRichParameterList(spec.NewRichShot("camera", spec.IdentityShot(), "", ""))
	if err := k.Set(context.Background(), "ns", "align", params); err == nil {
		t.Errorf("KubeMgr.Set() expected an error for a shot parameter")
	}
}

func TestKubeMgr_DeleteList(t *testing.T) {
	ctx := context.Background()
	k := NewKubeMgrWithClient(k8sfake.NewSimpleClientset(
		presetCm("preset.smooth", map[string]string{"Parameters": smoothPreset}),
		presetCm("preset.align", map[string]string{"Parameters": smoothPreset}),
		presetCm("unrelated", nil),
	))

	got, err := k.List(ctx, "ns")
	if err != nil {
		t.Fatalf("KubeMgr.List() error = %v", err)
	}
	if want := []string{"align", "smooth"}; !reflect.DeepEqual(got, want) {
		t.Errorf("KubeMgr.List() = %v, want %v", got, want)
	}

	if err := k.Delete(ctx, "ns", "smooth"); err != nil {
		t.Errorf("KubeMgr.Delete() error = %v", err)
	}
	if err := k.Delete(ctx, "ns", "smooth"); err != nil {
		t.Errorf("KubeMgr.Delete() of a missing preset error = %v", err)
	}
	got, _ = k.List(ctx, "ns")
	if want := []string{"align"}; !reflect.DeepEqual(got, want) {
		t.Errorf("KubeMgr.List() = %v, want %v", got, want)
	}
}

func TestKubeMgr_SetMixedCase(t *testing.T) {
	ctx := context.Background()
	client := k8sfake.NewSimpleClientset()
	k := NewKubeMgrWithClient(client)
	want := smoothParams(2, true)
	if err := k.Set(ctx, "ns", "MixedCase", want); err != nil {
		t.Fatalf("KubeMgr.Set() error = %v", err)
	}

	cms, err := client.CoreV1().ConfigMaps("ns").List(ctx, metav1.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cms.Items) != 1 {
		t.Fatalf("List() = %d configmaps, want 1", len(cms.Items))
	}
	for _, cm := range cms.Items {
		if errs := validation.IsDNS1123Subdomain(cm.Name); len(errs) != 0 {
			t.Errorf("configmap %q is not a legal name: %v", cm.Name, errs)
		}
	}

	for _, filter := range []string{"mixedcase", "MIXEDCASE", "MixedCase"} {
		got, err := k.Read(ctx, "ns", filter)
		if err != nil {
			t.Errorf("KubeMgr.Read(%s) error = %v", filter, err)
			continue
		}
		if !want.Equal(got) {
			t.Errorf("KubeMgr.Read(%s) = %v, want %v", filter, got, want)
		}
	}
	if filters, _ := k.List(ctx, "ns"); !reflect.DeepEqual(filters, []string{"mixedcase"}) {
		t.Errorf("KubeMgr.List() = %v, want [mixedcase]", filters)
	}
}
