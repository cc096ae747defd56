// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of reflection helpers for
// setting struct fields from their tags.
package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// NonPointerValue returns a non-pointer version of the given value,
// following pointers until it reaches a non-pointer.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct pointer
// based on `default:` struct field tag values. Fields of struct type
// without a default tag are processed recursively. Errors for individual
// fields are joined together.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("SetFromDefaultTags: expected non-nil pointer to struct, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: expected pointer to struct, not %T", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, SetFromDefaultTags(fv.Addr().Interface()))
			}
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetString sets the given settable value from its string representation.
// It supports strings, bools, integers, floats, durations and
// comma-separated slices of those.
func SetString(v reflect.Value, s string) error {
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Slice:
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
