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

package filterscript

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	spec "knative.dev/richparam/pkg/apis/param/v1alpha1"
)

func TestScript_Marshal(t *testing.T) {
	params, _ := spec.NewRichParameterList(
		spec.NewRichInt("steps", 3, "Steps", "Number of steps"),
		spec.NewRichBool("boundary", true, "", ""),
	)
	var s Script
	s.Add("smooth", params)
	s.Add("clean", nil)

	got, err := s.Marshal(false)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `<!DOCTYPE FilterScript>
<FilterScript>
 <filter name="smooth">
  <Param name="steps" type="RichInt" value="3"></Param>
  <Param name="boundary" type="RichBool" value="true"></Param>
 </filter>
 <filter name="clean"></filter>
</FilterScript>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}

	parsed, err := Parse(got)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed.Entries) != 2 || len(parsed.Problems) != 0 {
		t.Fatalf("Parse() = %d entries, problems %v", len(parsed.Entries), parsed.Problems)
	}
	smooth, ok := parsed.Lookup("smooth")
	if !ok || !smooth.Equal(params) {
		t.Errorf("Lookup(smooth) = %v, %v", smooth, ok)
	}
	if clean, ok := parsed.Lookup("clean"); !ok || clean.Len() != 0 {
		t.Errorf("Lookup(clean) = %v, %v", clean, ok)
	}
	if upper, ok := parsed.Lookup("SMOOTH"); !ok || !upper.Equal(params) {
		t.Errorf("Lookup(SMOOTH) = %v, %v", upper, ok)
	}
	if _, ok := parsed.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) = true")
	}
}

func TestScript_MarshalShot(t *testing.T) {
	params, _ := spec.NewRichParameterList(spec.NewRichShot("camera", spec.IdentityShot(), "", ""))
	var s Script
	s.Add("align", params)
	if _, err := s.Marshal(false); !errors.Is(err, spec.ErrNotImplemented) {
		t.Errorf("Marshal() error = %v, want ErrNotImplemented", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantErr      error
		wantEntries  int
		wantProblems int
	}{
		{
			name:    "not xml",
			data:    "abc",
			wantErr: errors.New("any"),
		},
		{
			name:    "other root",
			data:    "<Project/>",
			wantErr: ErrNotAScript,
		},
		{
			name:        "no doctype",
			data:        `<FilterScript><filter name="a"/></FilterScript>`,
			wantEntries: 1,
		},
		{
			name:         "unnamed filter",
			data:         `<FilterScript><filter/><filter name="b"/></FilterScript>`,
			wantEntries:  1,
			wantProblems: 1,
		},
		{
			name: "bad parameter",
			data: `<FilterScript><filter name="a">
 <Param name="x" type="RichInt" value="1"/>
 <Param name="y" type="RichShot"/>
 <Param name="z" type="RichFloat" value="oops"/>
</filter></FilterScript>`,
			wantEntries:  1,
			wantProblems: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data))
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Parse() expected an error")
				}
				if errors.Is(tt.wantErr, ErrNotAScript) && !errors.Is(err, ErrNotAScript) {
					t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(s.Entries) != tt.wantEntries {
				t.Errorf("Parse() entries = %d, want %d", len(s.Entries), tt.wantEntries)
			}
			if len(s.Problems) != tt.wantProblems {
				t.Errorf("Parse() problems = %v, want %d", s.Problems, tt.wantProblems)
			}
		})
	}
}
