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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Extrinsics place a camera in the world
type Extrinsics struct {
	Rotation    [3][3]Scalar // row major world to camera rotation
	Translation r3.Vec       // camera center in world coordinates
}

// Intrinsics describe the camera projection
type Intrinsics struct {
	FocalMm     Scalar
	PixelSizeMm [2]Scalar
	CenterPx    [2]Scalar
	ViewportPx  [2]int
	Distortion  [2]Scalar
}

// Shot is a camera extrinsic and intrinsic transform
// All fields are comparable so a Shot can be compared with ==
type Shot struct {
	Extrinsics Extrinsics
	Intrinsics Intrinsics
}

func IdentityShot() Shot {
	var s Shot
	s.Extrinsics.Rotation = [3][3]Scalar{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	return s
}

//////////////////// ShotValue ////////////////

// Exposes Value interface
type ShotValue struct {
	noValue
	val Shot
}

func NewShotValue(val Shot) *ShotValue {
	return &ShotValue{val: val}
}

func (v *ShotValue) Kind() Kind       { return KindShot }
func (v *ShotValue) TypeName() string { return KindShot.String() }

func (v *ShotValue) IsShot() bool { return true }

func (v *ShotValue) GetShot() (Shot, error) { return v.val, nil }

func (v *ShotValue) Set(other Value) error {
	if other == nil {
		return mismatch(KindShot)
	}
	val, err := other.GetShot()
	if err != nil {
		return err
	}
	v.val = val
	return nil
}

func (v *ShotValue) Clone() Value {
	return &ShotValue{val: v.val}
}

func (v *ShotValue) Equal(other Value) bool {
	if other == nil || !other.IsShot() {
		return false
	}
	val, _ := other.GetShot()
	return v.val == val
}

// Shots have no saved representation; nothing is written
func (v *ShotValue) WriteToXMLElement(e AttributeWriter) error {
	return fmt.Errorf("%s xml serialization %w", KindShot, ErrNotImplemented)
}
