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

import "gonum.org/v1/gonum/spatial/r3"

//////////////////// Point3Value ////////////////

// Exposes Value interface
type Point3Value struct {
	noValue
	val r3.Vec
}

func NewPoint3Value(val r3.Vec) *Point3Value {
	return &Point3Value{val: val}
}

func (v *Point3Value) Kind() Kind       { return KindPoint3 }
func (v *Point3Value) TypeName() string { return KindPoint3.String() }

func (v *Point3Value) IsPoint3() bool { return true }

func (v *Point3Value) GetPoint3() (r3.Vec, error) { return v.val, nil }

func (v *Point3Value) Set(other Value) error {
	if other == nil {
		return mismatch(KindPoint3)
	}
	val, err := other.GetPoint3()
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

func (v *Point3Value) Clone() Value {
	return &Point3Value{val: v.val}
}

func (v *Point3Value) Equal(other Value) bool {
	if other == nil || !other.IsPoint3() {
		return false
	}
	val, _ := other.GetPoint3()
	return v.val == val
}

func (v *Point3Value) WriteToXMLElement(e AttributeWriter) error {
	e.SetAttribute("x", FormatScalar(v.val.X))
	e.SetAttribute("y", FormatScalar(v.val.Y))
	e.SetAttribute("z", FormatScalar(v.val.Z))
	return nil
}
