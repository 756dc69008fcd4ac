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

//////////////////// IntValue ////////////////

// Exposes Value interface
type IntValue struct {
	noValue
	val int
}

func NewIntValue(val int) *IntValue {
	return &IntValue{val: val}
}

func (v *IntValue) Kind() Kind       { return KindInt }
func (v *IntValue) TypeName() string { return KindInt.String() }

func (v *IntValue) IsInt() bool { return true }

func (v *IntValue) GetInt() (int, error) { return v.val, nil }

func (v *IntValue) Set(other Value) error {
	if other == nil {
		return mismatch(KindInt)
	}
	val, err := other.GetInt()
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

func (v *IntValue) Clone() Value {
	return &IntValue{val: v.val}
}

func (v *IntValue) Equal(other Value) bool {
	if other == nil || !other.IsInt() {
		return false
	}
	val, _ := other.GetInt()
	return v.val == val
}

func (v *IntValue) WriteToXMLElement(e AttributeWriter) error {
	e.SetAttribute("value", strconv.Itoa(v.val))
	return nil
}
