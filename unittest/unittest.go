// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unittest contains helpers that are shared by the unit tests of
// multiple packages.
package unittest

import (
	"reflect"

	"github.com/pkg/errors"
)

// TestGenericConstMap verifies that the keys of a map of numeric constants
// run from zero up to, but excluding, the last constant without gaps. It is
// used to verify that every error code has a human readable entry.
func TestGenericConstMap(constMap interface{}, last uint64) error {
	if reflect.TypeOf(constMap).Kind() != reflect.Map {
		return errors.Errorf("not a map: %T", constMap)
	}
	keys := reflect.ValueOf(constMap).MapKeys()

	missing := make(map[uint64]struct{}, len(keys))
	for i := uint64(0); i < last; i++ {
		missing[i] = struct{}{}
	}
	for _, k := range keys {
		var v uint64
		switch k.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
			reflect.Uint64:
			v = k.Uint()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
			reflect.Int64:
			v = uint64(k.Int())
		default:
			return errors.Errorf("unsupported key type: %v", k.Kind())
		}
		if v >= last {
			return errors.Errorf("key %v is not below the last constant %v",
				v, last)
		}
		delete(missing, v)
	}
	if len(missing) != 0 {
		return errors.Errorf("constants without a map entry: %v", missing)
	}

	return nil
}

// CompareStructFieldCounts returns an error if the two structs do not have
// the same number of fields. Field types are not compared.
//
// This is used to catch a field that was added to a domain type without
// being added to its API type.
func CompareStructFieldCounts(struct1, struct2 interface{}) error {
	v1 := reflect.ValueOf(struct1)
	v2 := reflect.ValueOf(struct2)
	if v1.Kind() != reflect.Struct {
		return errors.Errorf("%T is not a struct", struct1)
	}
	if v2.Kind() != reflect.Struct {
		return errors.Errorf("%T is not a struct", struct2)
	}
	if v1.NumField() != v2.NumField() {
		return errors.Errorf("%T has %v fields, %T has %v fields",
			struct1, v1.NumField(), struct2, v2.NumField())
	}
	return nil
}
