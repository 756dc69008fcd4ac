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

//////////////////// StringValue ////////////////

// Exposes Value interface
type StringValue struct {
	noValue
	val string
}

func NewStringValue(val string) *StringValue {
	return &StringValue{val: val}
}

func (v *StringValue) Kind() Kind       { return KindString }
func (v *StringValue) TypeName() string { return KindString.String() }

func (v *StringValue) IsString() bool { return true }

func (v *StringValue) GetString() (string, error) { return v.val, nil }

func (v *StringValue) Set(other Value) error {
	if other == nil {
		return mismatch(KindString)
	}
	val, err := other.GetString()
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

func (v *StringValue) Clone() Value {
	return &StringValue{val: v.val}
}

func (v *StringValue) Equal(other Value) bool {
	if other == nil || !other.IsString() {
		return false
	}
	val, _ := other.GetString()
	return v.val == val
}

func (v *StringValue) WriteToXMLElement(e AttributeWriter) error {
	e.SetAttribute("value", v.val)
	return nil
}
