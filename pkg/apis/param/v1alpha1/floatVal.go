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

import "math"

//////////////////// FloatValue ////////////////

// Exposes Value interface
type FloatValue struct {
	noValue
	val Scalar
}

func NewFloatValue(val Scalar) *FloatValue {
	return &FloatValue{val: val}
}

func (v *FloatValue) Kind() Kind       { return KindFloat }
func (v *FloatValue) TypeName() string { return KindFloat.String() }

func (v *FloatValue) IsFloat() bool { return true }

func (v *FloatValue) GetFloat() (Scalar, error) { return v.val, nil }

func (v *FloatValue) Set(other Value) error {
	if other == nil {
		return mismatch(KindFloat)
	}
	val, err := other.GetFloat()
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

func (v *FloatValue) Clone() Value {
	return &FloatValue{val: v.val}
}

func (v *FloatValue) Equal(other Value) bool {
	if other == nil || !other.IsFloat() {
		return false
	}
	val, _ := other.GetFloat()
	return v.val == val || (math.IsNaN(v.val) && math.IsNaN(val))
}

func (v *FloatValue) WriteToXMLElement(e AttributeWriter) error {
	e.SetAttribute("value", FormatScalar(v.val))
	return nil
}
