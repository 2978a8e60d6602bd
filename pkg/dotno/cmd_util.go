// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package dotno

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"github.com/spf13/cobra"
)

var errNotStringSlice = fmt.Errorf("VALUE_PATTERN should only be specified for options that accept multiple strings")

var (
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func marshalText(v reflect.Value) (s string, err error) {
	t := v.Type()
	switch {
	case t.Kind() == reflect.String:
		return v.String(), nil
	case t.Implements(stringerType):
		return v.Interface().(fmt.Stringer).String(), nil
	case t.Implements(textMarshalerType):
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := json.Marshal(v.Interface())
	if err != nil {
		return
	}
	return string(b), nil
}

// FilterWithValuePattern returns elements of the string slice v that match
// valuePattern, either exactly (with --fixed-value) or as a regular expression
func FilterWithValuePattern(cmd *cobra.Command, v reflect.Value, valuePattern string) (idxMap map[int]struct{}, vals []string, err error) {
	fixedValue, err := cmd.Flags().GetBool("fixed-value")
	if err != nil {
		return
	}
	if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.String {
		err = errNotStringSlice
		return
	}
	match := func(s string) bool { return s == valuePattern }
	if !fixedValue {
		pat, err := regexp.Compile(valuePattern)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing VALUE_PATTERN: %v", err)
		}
		match = pat.MatchString
	}
	idxMap = map[int]struct{}{}
	n := v.Len()
	for i := 0; i < n; i++ {
		s := v.Index(i).String()
		if match(s) {
			idxMap[i] = struct{}{}
			vals = append(vals, s)
		}
	}
	return
}

// RemoveIndices removes from slice v every element whose index is in idxMap
func RemoveIndices(v reflect.Value, idxMap map[int]struct{}) {
	n := v.Len()
	result := reflect.MakeSlice(v.Type(), 0, n-len(idxMap))
	for i := 0; i < n; i++ {
		if _, ok := idxMap[i]; !ok {
			result = reflect.Append(result, v.Index(i))
		}
	}
	if result.Len() == 0 {
		result = reflect.Zero(v.Type())
	}
	v.Set(result)
}

// OutputValues prints vals to cmd's output. Slices print one element per
// line. Other non-text values print as JSON.
func OutputValues(cmd *cobra.Command, vals interface{}) (err error) {
	null, err := cmd.Flags().GetBool("null")
	if err != nil {
		return
	}
	v := reflect.ValueOf(vals)
	if v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() != reflect.Struct {
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.String {
		n := v.Len()
		for i := 0; i < n; i++ {
			cmd.Print(v.Index(i).String())
			if i < n-1 {
				cmd.Print("\n")
			}
		}
	} else {
		s, err := marshalText(v)
		if err != nil {
			return err
		}
		cmd.Print(s)
	}
	if null {
		cmd.Print("\x00")
	} else {
		cmd.Print("\n")
	}
	return nil
}
