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
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Scalar is the precision used by every floating point payload
type Scalar = float64

var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateName  = errors.New("duplicate name")
	ErrUnknownType    = errors.New("unknown parameter type")
	ErrMalformed      = errors.New("malformed parameter")
)

type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindPoint3
	KindShot
	KindString
)

var kindNames = [...]string{"Bool", "Int", "Float", "Point3", "Shot", "String"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// AttributeWriter is the part of an xml element a Value writes into
type AttributeWriter interface {
	SetAttribute(name string, value string)
}

// AttributeReader is the part of an xml element a parameter is read from
type AttributeReader interface {
	Attribute(name string) (string, bool)
}

// A Value holds exactly one typed payload
// The set of implementations is closed
type Value interface {
	Kind() Kind
	TypeName() string

	IsBool() bool
	IsInt() bool
	IsFloat() bool
	IsPoint3() bool
	IsShot() bool
	IsString() bool

	// Get accessors fail with ErrTypeMismatch unless the matching Is predicate is true
	GetBool() (bool, error)
	GetInt() (int, error)
	GetFloat() (Scalar, error)
	GetPoint3() (r3.Vec, error)
	GetShot() (Shot, error)
	GetString() (string, error)

	// Set copies the payload of a value of the same kind
	// The kind of the receiver never changes
	Set(other Value) error

	// Clone returns an independent deep copy
	Clone() Value

	// Equal is true when other is of the same kind and carries an equal payload
	Equal(other Value) bool

	// WriteToXMLElement writes the attributes needed to reconstruct the payload
	WriteToXMLElement(e AttributeWriter) error

	valueI()
}

func mismatch(want Kind) error {
	return fmt.Errorf("%w: value is not %s", ErrTypeMismatch, want)
}

// noValue answers every predicate with false and every accessor with ErrTypeMismatch
// Each kind embeds it and overrides its own predicate and accessor
type noValue struct{}

func (noValue) valueI() {}

func (noValue) IsBool() bool   { return false }
func (noValue) IsInt() bool    { return false }
func (noValue) IsFloat() bool  { return false }
func (noValue) IsPoint3() bool { return false }
func (noValue) IsShot() bool   { return false }
func (noValue) IsString() bool { return false }

func (noValue) GetBool() (bool, error)     { return false, mismatch(KindBool) }
func (noValue) GetInt() (int, error)       { return 0, mismatch(KindInt) }
func (noValue) GetFloat() (Scalar, error)  { return 0, mismatch(KindFloat) }
func (noValue) GetPoint3() (r3.Vec, error) { return r3.Vec{}, mismatch(KindPoint3) }
func (noValue) GetShot() (Shot, error)     { return Shot{}, mismatch(KindShot) }
func (noValue) GetString() (string, error) { return "", mismatch(KindString) }

// FormatScalar is the canonical number to string conversion of saved parameters
func FormatScalar(f Scalar) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func ParseScalar(s string) (Scalar, error) {
	return strconv.ParseFloat(s, 64)
}
