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
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// ParseRichParameter rebuilds a parameter from an element written by FillToXMLDocument
// Hidden and category are not saved and come back with their zero values
func ParseRichParameter(el AttributeReader) (RichParameter, error) {
	name, ok := el.Attribute("name")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformed)
	}
	typ, ok := el.Attribute("type")
	if !ok {
		return nil, fmt.Errorf("parameter %s: %w: missing type", name, ErrMalformed)
	}
	description, _ := el.Attribute("description")
	tooltip, _ := el.Attribute("tooltip")

	p, err := parseTyped(el, typ, name, description, tooltip)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	return p, nil
}

func parseTyped(el AttributeReader, typ string, name string, description string, tooltip string) (RichParameter, error) {
	switch typ {
	case TypeRichBool:
		v, err := boolAttr(el, "value")
		if err != nil {
			return nil, err
		}
		return NewRichBool(name, v, description, tooltip), nil
	case TypeRichInt, TypeRichMesh, TypeRichEnum:
		v, err := intAttr(el, "value")
		if err != nil {
			return nil, err
		}
		switch typ {
		case TypeRichMesh:
			return NewRichMesh(name, v, description, tooltip), nil
		case TypeRichEnum:
			labels, err := listAttr(el, "enum")
			if err != nil {
				return nil, err
			}
			return NewRichEnum(name, v, labels, description, tooltip), nil
		}
		return NewRichInt(name, v, description, tooltip), nil
	case TypeRichFloat:
		v, err := scalarAttr(el, "value")
		if err != nil {
			return nil, err
		}
		return NewRichFloat(name, v, description, tooltip), nil
	case TypeRichDynamicFloat, TypeRichAbsPerc:
		v, err := scalarAttr(el, "value")
		if err != nil {
			return nil, err
		}
		min, err := scalarAttr(el, "min")
		if err != nil {
			return nil, err
		}
		max, err := scalarAttr(el, "max")
		if err != nil {
			return nil, err
		}
		if typ == TypeRichAbsPerc {
			return NewRichAbsPerc(name, v, min, max, description, tooltip), nil
		}
		return NewRichDynamicFloat(name, v, min, max, description, tooltip), nil
	case TypeRichPosition, TypeRichDirection:
		v, err := point3Attr(el)
		if err != nil {
			return nil, err
		}
		if typ == TypeRichDirection {
			return NewRichDirection(name, v, description, tooltip), nil
		}
		return NewRichPosition(name, v, description, tooltip), nil
	case TypeRichString:
		v, err := stringAttr(el, "value")
		if err != nil {
			return nil, err
		}
		return NewRichString(name, v, description, tooltip), nil
	case TypeRichOpenFile:
		v, err := stringAttr(el, "value")
		if err != nil {
			return nil, err
		}
		exts, err := listAttr(el, "exts")
		if err != nil {
			return nil, err
		}
		return NewRichOpenFile(name, v, exts, description, tooltip), nil
	case TypeRichSaveFile:
		v, err := stringAttr(el, "value")
		if err != nil {
			return nil, err
		}
		ext, _ := el.Attribute("ext")
		return NewRichSaveFile(name, v, ext, description, tooltip), nil
	case TypeRichShot:
		return nil, fmt.Errorf("%s xml parsing %w", KindShot, ErrNotImplemented)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, typ)
}

func stringAttr(el AttributeReader, attr string) (string, error) {
	s, ok := el.Attribute(attr)
	if !ok {
		return "", fmt.Errorf("%w: missing attribute %s", ErrMalformed, attr)
	}
	return s, nil
}

func boolAttr(el AttributeReader, attr string) (bool, error) {
	s, err := stringAttr(el, attr)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: attribute %s=%q is not a bool", ErrMalformed, attr, s)
	}
	return b, nil
}

func intAttr(el AttributeReader, attr string) (int, error) {
	s, err := stringAttr(el, attr)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s=%q is not an int", ErrMalformed, attr, s)
	}
	return i, nil
}

func scalarAttr(el AttributeReader, attr string) (Scalar, error) {
	s, err := stringAttr(el, attr)
	if err != nil {
		return 0, err
	}
	f, err := ParseScalar(s)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s=%q is not a number", ErrMalformed, attr, s)
	}
	return f, nil
}

func point3Attr(el AttributeReader) (r3.Vec, error) {
	var v r3.Vec
	var err error
	if v.X, err = scalarAttr(el, "x"); err != nil {
		return v, err
	}
	if v.Y, err = scalarAttr(el, "y"); err != nil {
		return v, err
	}
	if v.Z, err = scalarAttr(el, "z"); err != nil {
		return v, err
	}
	return v, nil
}

// listAttr reads a list written by writeList
func listAttr(el AttributeReader, prefix string) ([]string, error) {
	n, err := intAttr(el, prefix+"_cardinality")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative %s_cardinality", ErrMalformed, prefix)
	}
	list := make([]string, n)
	for i := range list {
		if list[i], err = stringAttr(el, prefix+"_val"+strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	return list, nil
}
