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
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
	"knative.dev/richparam/pkg/xmldoc"
)

func mustList(t *testing.T, params ...RichParameter) *RichParameterList {
	t.Helper()
	l, err := NewRichParameterList(params...)
	if err != nil {
		t.Fatalf("NewRichParameterList() error = %v", err)
	}
	return l
}

func names(params []RichParameter) []string {
	var n []string
	for _, p := range params {
		n = append(n, p.Name())
	}
	return n
}

func TestRichParameterList_AddRemove(t *testing.T) {
	l := mustList(t, NewRichInt("a", 1, "", ""), NewRichFloat("b", 2, "", ""), NewRichBool("c", true, "", ""))
	if l.Len() != 3 || l.At(1).Name() != "b" {
		t.Fatalf("list = %v", names(l.All()))
	}

	if err := l.Add(NewRichString("a", "x", "", "")); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Add() error = %v, want ErrDuplicateName", err)
	}
	if l.Len() != 3 {
		t.Errorf("Add() of a duplicate changed the list")
	}
	if _, err := NewRichParameterList(NewRichInt("a", 1, "", ""), NewRichInt("a", 2, "", "")); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("NewRichParameterList() error = %v, want ErrDuplicateName", err)
	}

	if !l.Remove("a") || l.Remove("a") {
		t.Errorf("Remove() did not remove exactly once")
	}
	if got := names(l.All()); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("All() = %v, want [b c]", got)
	}
	if v, err := l.GetBool("c"); err != nil || !v {
		t.Errorf("GetBool() after Remove = %v, %v", v, err)
	}
	if l.Has("a") || !l.Has("b") {
		t.Errorf("Has() wrong after Remove")
	}

	if err := l.Add(nil); !errors.Is(err, ErrMalformed) {
		t.Errorf("Add(nil) error = %v, want ErrMalformed", err)
	}
	if l.Len() != 2 {
		t.Errorf("Add(nil) changed the list")
	}

	var empty RichParameterList
	if empty.Has("x") || empty.Len() != 0 {
		t.Errorf("zero list not empty")
	}
	if err := empty.Add(NewRichInt("x", 1, "", "")); err != nil {
		t.Errorf("zero list Add() error = %v", err)
	}
}

func TestRichParameterList_TypedGetters(t *testing.T) {
	l := mustList(t,
		NewRichBool("b", true, "", ""),
		NewRichInt("i", 4, "", ""),
		NewRichDynamicFloat("f", 0.5, 0, 1, "", ""),
		NewRichDirection("p", r3.Vec{Y: 1}, "", ""),
		NewRichShot("c", IdentityShot(), "", ""),
		NewRichOpenFile("s", "a.ply", nil, "", ""),
	)

	if v, err := l.GetBool("b"); err != nil || v != true {
		t.Errorf("GetBool() = %v, %v", v, err)
	}
	if v, err := l.GetInt("i"); err != nil || v != 4 {
		t.Errorf("GetInt() = %v, %v", v, err)
	}
	if v, err := l.GetFloat("f"); err != nil || v != 0.5 {
		t.Errorf("GetFloat() = %v, %v", v, err)
	}
	if v, err := l.GetPoint3("p"); err != nil || v != (r3.Vec{Y: 1}) {
		t.Errorf("GetPoint3() = %v, %v", v, err)
	}
	if v, err := l.GetShot("c"); err != nil || v != IdentityShot() {
		t.Errorf("GetShot() = %v, %v", v, err)
	}
	if v, err := l.GetString("s"); err != nil || v != "a.ply" {
		t.Errorf("GetString() = %v, %v", v, err)
	}

	if _, err := l.GetInt("b"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetInt() of a bool error = %v, want ErrTypeMismatch", err)
	}
	if _, err := l.GetInt("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetInt() of a missing name error = %v, want ErrNotFound", err)
	}

	df, err := Lookup[*RichDynamicFloat](l, "f")
	if err != nil || df.Max() != 1 {
		t.Errorf("Lookup() = %v, %v", df, err)
	}
	if _, err := Lookup[*RichFloat](l, "f"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Lookup() wrong type error = %v, want ErrTypeMismatch", err)
	}
	if _, err := Lookup[*RichFloat](l, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() missing error = %v, want ErrNotFound", err)
	}
}

type fakeEditor struct {
	v   Value
	err error
}

func (e fakeEditor) EditedValue() (Value, error) { return e.v, e.err }

func TestRichParameterList_SetValue(t *testing.T) {
	l := mustList(t, NewRichInt("i", 1, "", ""), NewRichString("s", "a", "", ""))

	if err := l.SetValue("i", NewIntValue(9)); err != nil {
		t.Errorf("SetValue() error = %v", err)
	}
	if err := l.SetValue("i", NewStringValue("x")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetValue() error = %v, want ErrTypeMismatch", err)
	}
	if err := l.SetValue("x", NewIntValue(1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetValue() error = %v, want ErrNotFound", err)
	}
	if v, _ := l.GetInt("i"); v != 9 {
		t.Errorf("GetInt() = %d, want 9", v)
	}

	if err := l.ApplyEdit("s", fakeEditor{v: NewStringValue("edited")}); err != nil {
		t.Errorf("ApplyEdit() error = %v", err)
	}
	if v, _ := l.GetString("s"); v != "edited" {
		t.Errorf("GetString() = %s, want edited", v)
	}
	wErr := errors.New("widget closed")
	if err := l.ApplyEdit("s", fakeEditor{err: wErr}); !errors.Is(err, wErr) {
		t.Errorf("ApplyEdit() error = %v, want %v", err, wErr)
	}
	if err := l.ApplyEdit("s", fakeEditor{v: NewBoolValue(true)}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ApplyEdit() error = %v, want ErrTypeMismatch", err)
	}
}

func TestRichParameterList_Merge(t *testing.T) {
	tests := []struct {
		name   string
		target []RichParameter
		other  []RichParameter
		want   []RichParameter
		report MergeReport
	}{
		{
			name:   "partial",
			target: []RichParameter{NewRichInt("A", 1, "", ""), NewRichFloat("B", 2, "", "")},
			other:  []RichParameter{NewRichInt("A", 5, "", ""), NewRichBool("C", true, "", "")},
			want:   []RichParameter{NewRichInt("A", 5, "", ""), NewRichFloat("B", 2, "", "")},
			report: MergeReport{Applied: []string{"A"}, Unknown: []string{"C"}},
		},
		{
			name:   "type mismatch",
			target: []RichParameter{NewRichInt("A", 1, "", "")},
			other:  []RichParameter{NewRichFloat("A", 7, "", "")},
			want:   []RichParameter{NewRichInt("A", 1, "", "")},
			report: MergeReport{Mismatched: []string{"A"}},
		},
		{
			name:   "same kind other type",
			target: []RichParameter{NewRichEnum("A", 0, []string{"x", "y"}, "", "")},
			other:  []RichParameter{NewRichInt("A", 1, "", "")},
			want:   []RichParameter{NewRichEnum("A", 0, []string{"x", "y"}, "", "")},
			report: MergeReport{Mismatched: []string{"A"}},
		},
		{
			name:   "empty",
			target: []RichParameter{NewRichInt("A", 1, "", "")},
			want:   []RichParameter{NewRichInt("A", 1, "", "")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustList(t, tt.target...)
			report := l.Merge(mustList(t, tt.other...))
			if !l.Equal(mustList(t, tt.want...)) {
				t.Errorf("Merge() result %v", names(l.All()))
			}
			if diff := cmp.Diff(tt.report, report); diff != "" {
				t.Errorf("Merge() report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRichParameterList_MergeKeepsMetadata(t *testing.T) {
	l := mustList(t, NewRichDynamicFloat("A", 1, 0, 10, "declared", "tip", WithCategory("c")))
	l.Merge(mustList(t, NewRichDynamicFloat("A", 3, -5, 5, "saved", "")))
	df, _ := Lookup[*RichDynamicFloat](l, "A")
	if df.Float() != 3 {
		t.Errorf("Float() = %v, want 3", df.Float())
	}
	if df.Description() != "declared" || df.Min() != 0 || df.Max() != 10 || df.Category() != "c" {
		t.Errorf("Merge() changed metadata: %q [%v, %v] %q", df.Description(), df.Min(), df.Max(), df.Category())
	}
}

func TestRichParameterList_MergeIdempotent(t *testing.T) {
	l := mustList(t, sampleParams()...)
	other := mustList(t, NewRichInt("i", 8, "", ""), NewRichString("s", "bye", "", ""))
	l.Merge(other)
	once := l.Clone()
	l.Merge(other)
	if !l.Equal(once) {
		t.Errorf("second Merge() changed the list")
	}
	if l.Merge(nil).Applied != nil {
		t.Errorf("Merge(nil) applied values")
	}
}

func TestRichParameterList_EqualClone(t *testing.T) {
	a := mustList(t, NewRichInt("x", 1, "", ""), NewRichBool("y", true, "", ""))
	b := mustList(t, NewRichBool("y", true, "other", ""), NewRichInt("x", 1, "", ""))
	if !a.Equal(b) {
		t.Errorf("Equal() depends on order or metadata")
	}
	if a.Equal(mustList(t, NewRichInt("x", 1, "", ""))) {
		t.Errorf("Equal() ignores length")
	}
	if a.Equal(nil) {
		t.Errorf("Equal(nil) = true")
	}

	c := a.Clone()
	c.SetValue("x", NewIntValue(2))
	if v, _ := a.GetInt("x"); v != 1 {
		t.Errorf("Clone() shares values with the original")
	}
	c.Remove("y")
	if !a.Has("y") {
		t.Errorf("Clone() shares the index with the original")
	}
}

func TestRichParameterList_Categories(t *testing.T) {
	l := mustList(t,
		NewRichInt("a", 1, "", ""),
		NewRichInt("b", 1, "", "", WithCategory("advanced")),
		NewRichInt("c", 1, "", "", WithHidden()),
		NewRichInt("d", 1, "", ""),
		NewRichInt("e", 1, "", "", WithCategory("advanced"), WithHidden()),
		NewRichInt("f", 1, "", "", WithCategory("advanced")),
	)
	if got := names(l.Visible()); !reflect.DeepEqual(got, []string{"a", "b", "d", "f"}) {
		t.Errorf("Visible() = %v", got)
	}
	groups := l.Categories()
	if len(groups) != 2 {
		t.Fatalf("Categories() = %d groups, want 2", len(groups))
	}
	if groups[0].Category != "" || !reflect.DeepEqual(names(groups[0].Params), []string{"a", "d"}) {
		t.Errorf("Categories()[0] = %q %v", groups[0].Category, names(groups[0].Params))
	}
	if groups[1].Category != "advanced" || !reflect.DeepEqual(names(groups[1].Params), []string{"b", "f"}) {
		t.Errorf("Categories()[1] = %q %v", groups[1].Category, names(groups[1].Params))
	}
}

func TestRichParameterList_Fingerprint(t *testing.T) {
	a := mustList(t, sampleParams()...)
	b := mustList(t, sampleParams()...)
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("Fingerprint() differs for equal lists")
	}
	b.At(0).SetDescription("changed")
	b.At(0).SetHidden(true)
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("Fingerprint() depends on metadata")
	}
	b.SetValue("i", NewIntValue(100))
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("Fingerprint() ignores values")
	}
	shot := IdentityShot()
	shot.Intrinsics.FocalMm = 50
	c := a.Clone()
	c.SetValue("c", NewShotValue(shot))
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("Fingerprint() ignores shots")
	}
	// name boundaries are part of the hash
	x := mustList(t, NewRichString("ab", "c", "", ""))
	y := mustList(t, NewRichString("a", "bc", "", ""))
	if x.Fingerprint() == y.Fingerprint() {
		t.Errorf("Fingerprint() collides on shifted boundaries")
	}
}

func TestRichParameterList_XMLRoundTrip(t *testing.T) {
	var params []RichParameter
	for _, p := range sampleParams() {
		if p.StringType() != TypeRichShot {
			params = append(params, p)
		}
	}
	l := mustList(t, params...)
	doc := xmldoc.NewDocument("test")
	root := doc.CreateElement("filter")
	if err := l.FillToXMLElement(doc, root, true); err != nil {
		t.Fatalf("FillToXMLElement() error = %v", err)
	}
	if len(root.Children) != l.Len() {
		t.Fatalf("FillToXMLElement() wrote %d elements, want %d", len(root.Children), l.Len())
	}

	got, problems := ParseRichParameterList(root)
	if len(problems) != 0 {
		t.Errorf("ParseRichParameterList() problems = %v", problems)
	}
	if !got.Equal(l) {
		t.Errorf("ParseRichParameterList() = %v, want %v", names(got.All()), names(l.All()))
	}
	if !reflect.DeepEqual(names(got.All()), names(l.All())) {
		t.Errorf("ParseRichParameterList() order = %v", names(got.All()))
	}

	withShot := mustList(t, NewRichShot("c", IdentityShot(), "", ""))
	if err := withShot.FillToXMLElement(doc, root, false); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("FillToXMLElement() error = %v, want ErrNotImplemented", err)
	}
}

func TestRichParameterList_FillToXMLElementFailure(t *testing.T) {
	l := mustList(t, NewRichInt("steps", 3, "", ""), NewRichShot("camera", IdentityShot(), "", ""))
	doc := xmldoc.NewDocument("test")
	root := doc.CreateElement("filter")
	if err := l.FillToXMLElement(doc, root, false); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("FillToXMLElement() error = %v, want ErrNotImplemented", err)
	}
	if len(root.Children) != 0 {
		t.Errorf("FillToXMLElement() left %d elements on failure", len(root.Children))
	}
}

func TestParseRichParameterList_Problems(t *testing.T) {
	parent := &xmldoc.Element{Name: "filter"}
	add := func(attrs ...xmldoc.Attr) {
		parent.AppendChild(&xmldoc.Element{Name: ParamElement, Attrs: attrs})
	}
	add(xmldoc.Attr{Name: "name", Value: "a"}, xmldoc.Attr{Name: "type", Value: "RichInt"}, xmldoc.Attr{Name: "value", Value: "1"})
	add(xmldoc.Attr{Name: "name", Value: "b"}, xmldoc.Attr{Name: "type", Value: "RichUnknown"})
	add(xmldoc.Attr{Name: "name", Value: "a"}, xmldoc.Attr{Name: "type", Value: "RichInt"}, xmldoc.Attr{Name: "value", Value: "2"})
	parent.AppendChild(&xmldoc.Element{Name: "Other"})

	l, problems := ParseRichParameterList(parent)
	if l.Len() != 1 {
		t.Errorf("ParseRichParameterList() len = %d, want 1", l.Len())
	}
	if v, _ := l.GetInt("a"); v != 1 {
		t.Errorf("GetInt() = %d, want the first entry", v)
	}
	if len(problems) != 2 {
		t.Fatalf("ParseRichParameterList() problems = %v, want 2", problems)
	}
	if !errors.Is(problems[0], ErrUnknownType) || !errors.Is(problems[1], ErrDuplicateName) {
		t.Errorf("ParseRichParameterList() problems = %v", problems)
	}
}

func TestMergeReport_String(t *testing.T) {
	r := MergeReport{Applied: []string{"a", "b"}, Unknown: []string{"c"}}
	if got, want := r.String(), "applied 2, unknown [c], mismatched []"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
