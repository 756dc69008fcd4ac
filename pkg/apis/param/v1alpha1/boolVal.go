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

import "strconv"

//////////////////// BoolValue ////////////////

// Exposes Value interface
type BoolValue struct {
	noValue
	val bool
}

func NewBoolValue(val bool) *BoolValue {
	return &BoolValue{val: val}
}

func (v *BoolValue) Kind() Kind       { return KindBool }
func (v *BoolValue) TypeName() string { return KindBool.String() }

func (v *BoolValue) IsBool() bool { return true }

func (v *BoolValue) GetBool() (bool, error) { return v.val, nil }

func (v *BoolValue) Set(other Value) error {
	if other == nil {
		return mismatch(KindBool)
	}
	val, err := other.GetBool()
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

func (v *BoolValue) Clone() Value {
	return &BoolValue{val: v.val}
}

func (v *BoolValue) Equal(other Value) bool {
	if other == nil || !other.IsBool() {
		return false
	}
	val, _ := other.GetBool()
	return v.val == val
}

func (v *BoolValue) WriteToXMLElement(e AttributeWriter) error {
	e.SetAttribute("value", strconv.FormatBool(v.val))
	return nil
}
