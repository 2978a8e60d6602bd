// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package dotno

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// fieldByName finds a struct field by its yaml tag name, falling back to
// the capitalized Go field name
func fieldByName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if tag, _, _ := strings.Cut(sf.Tag.Get("yaml"), ","); tag == name {
			return sf, true
		}
	}
	if name == "" {
		return reflect.StructField{}, false
	}
	return t.FieldByName(strings.ToUpper(name[:1]) + name[1:])
}

func newZero(t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.Ptr:
		return reflect.New(t.Elem())
	case reflect.Map:
		return reflect.MakeMap(t)
	default:
		return reflect.New(t).Elem()
	}
}

// GetFieldValue walks s following the dot-separated path prop. Struct fields
// are named by their yaml tags, map entries by their keys and slice elements
// by their indices. When createIfZero is true, nil struct pointers, maps and
// missing map entries along the path are created.
func GetFieldValue(s interface{}, prop string, createIfZero bool) (reflect.Value, error) {
	v := reflect.ValueOf(s)
	if prop == "" {
		return v, nil
	}
	for _, p := range strings.Split(prop, ".") {
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		switch v.Kind() {
		case reflect.Struct:
			sf, ok := fieldByName(v.Type(), p)
			if !ok {
				return reflect.Value{}, fmt.Errorf("field %q not found", p)
			}
			v = v.FieldByIndex(sf.Index)
			if v.IsZero() {
				if !createIfZero {
					return reflect.Value{}, fmt.Errorf("field %q is not set", p)
				}
				// pointers to scalars stay nil until a value is set
				if (v.Kind() == reflect.Ptr && v.Type().Elem().Kind() == reflect.Struct) || v.Kind() == reflect.Map {
					v.Set(newZero(v.Type()))
				}
			}
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return reflect.Value{}, fmt.Errorf("map key must be a string")
			}
			key := reflect.ValueOf(p).Convert(v.Type().Key())
			e := v.MapIndex(key)
			if !e.IsValid() || (e.Kind() == reflect.Ptr && e.IsNil()) {
				if !createIfZero {
					return reflect.Value{}, fmt.Errorf("key not found: %q", p)
				}
				e = newZero(v.Type().Elem())
				v.SetMapIndex(key, e)
			}
			v = e
		case reflect.Slice:
			i, err := strconv.Atoi(p)
			if err != nil || i < 0 || i >= v.Len() {
				return reflect.Value{}, fmt.Errorf("index %q out of range", p)
			}
			v = v.Index(i)
		default:
			return reflect.Value{}, fmt.Errorf("unhandled kind %v", v.Kind())
		}
	}
	return v, nil
}

func GetParentField(s interface{}, prop string) (parent reflect.Value, name string, err error) {
	i := strings.LastIndex(prop, ".")
	if i < 0 {
		name = prop
		parent = reflect.ValueOf(s)
		return
	}
	name = prop[i+1:]
	parent, err = GetFieldValue(s, prop[:i], false)
	return
}

// UnsetField resets the field at prop to its zero value, or deletes the map
// entry. Unless all is true, fields holding multiple values are left alone.
func UnsetField(s interface{}, prop string, all bool) (err error) {
	parent, name, err := GetParentField(s, prop)
	if err != nil {
		return
	}
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	switch parent.Kind() {
	case reflect.Struct:
		sf, ok := fieldByName(parent.Type(), name)
		if !ok {
			return fmt.Errorf("field %q not found", name)
		}
		field := parent.FieldByIndex(sf.Index)
		if !all && field.Kind() == reflect.Slice && field.Len() > 1 {
			return fmt.Errorf("key contains multiple values")
		}
		field.Set(reflect.Zero(field.Type()))
	case reflect.Map:
		key := reflect.ValueOf(name).Convert(parent.Type().Key())
		field := parent.MapIndex(key)
		if !field.IsValid() {
			return fmt.Errorf("key not found: %q", name)
		}
		if !all && field.Kind() == reflect.Slice && field.Len() > 1 {
			return fmt.Errorf("key contains multiple values")
		}
		parent.SetMapIndex(key, reflect.Value{})
	default:
		return fmt.Errorf("unhandled kind %v", parent.Kind())
	}
	return nil
}

func parseBool(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("bad value: %q, only accept %q or %q", val, "true", "false")
}

func parseInt(val string) (int64, error) {
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value: %q, expecting an integer", val)
	}
	return i, nil
}

// SetValue parses val into v. Multi-valued fields can only be set through
// AppendSlice.
func SetValue(v reflect.Value, val string) error {
	switch v.Kind() {
	case reflect.String:
		v.Set(reflect.ValueOf(val).Convert(v.Type()))
	case reflect.Bool:
		b, err := parseBool(val)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := parseInt(val)
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return fmt.Errorf("bad value: %q overflows %v", val, v.Type())
		}
		v.SetInt(i)
	case reflect.Ptr:
		switch v.Type().Elem().Kind() {
		case reflect.Bool, reflect.Int, reflect.Int64, reflect.String:
			e := reflect.New(v.Type().Elem())
			if err := SetValue(e.Elem(), val); err != nil {
				return err
			}
			v.Set(e)
		default:
			return fmt.Errorf("setValue: unhandled pointer of type %v", v.Type().Elem())
		}
	case reflect.Slice:
		return fmt.Errorf("key accepts multiple values, use \"config add\" instead")
	default:
		return fmt.Errorf("setValue: unhandled type %v", v.Type())
	}
	return nil
}

// AppendSlice appends val to the slice v
func AppendSlice(v reflect.Value, val string) error {
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("command only support multiple values field. Use \"config set\" command instead")
	}
	e := reflect.New(v.Type().Elem()).Elem()
	if err := SetValue(e, val); err != nil {
		return err
	}
	v.Set(reflect.Append(v, e))
	return nil
}
