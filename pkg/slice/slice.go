package slice

import (
	"fmt"
)

func DuplicatedString(s []string) string {
	m := map[string]string{}
	for _, k := range s {
		if _, ok := m[k]; ok {
			return k
		}
		m[k] = k
	}
	return ""
}

// StringsNotInSubset returns every string of s1 that is absent from s2, in s1's order
func StringsNotInSubset(s1, s2 []string) []string {
	m := map[string]struct{}{}
	for _, k := range s2 {
		m[k] = struct{}{}
	}
	var res []string
	for _, k := range s1 {
		if _, ok := m[k]; !ok {
			res = append(res, k)
		}
	}
	return res
}

// ValueAt returns row[i] or an empty string if the row is too short
func ValueAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func IndicesToValues(vals []string, keys []int) []string {
	res := make([]string, 0, len(keys))
	for _, k := range keys {
		res = append(res, ValueAt(vals, k))
	}
	return res
}

// IndexOf returns the index of the first occurrence of s, or -1
func IndexOf(sl []string, s string) int {
	for i, v := range sl {
		if v == s {
			return i
		}
	}
	return -1
}

// KeyIndices returns the index of each key in columns. When a column name
// is duplicated the first occurrence wins.
func KeyIndices(columns, keys []string) ([]int, error) {
	res := []int{}
	for _, k := range keys {
		i := IndexOf(columns, k)
		if i < 0 {
			return nil, fmt.Errorf(`key "%s" not found in string slice`, k)
		}
		res = append(res, i)
	}
	return res, nil
}

// CompareAt compares a and b field by field, reading fields ai from a and bi
// from b. ai and bi must have the same length.
func CompareAt(a []string, ai []int, b []string, bi []int) int {
	for k, i := range ai {
		x, y := ValueAt(a, i), ValueAt(b, bi[k])
		if x < y {
			return -1
		} else if x > y {
			return 1
		}
	}
	return 0
}

// EqualAt reports whether a and b hold the same values at ai and bi
func EqualAt(a []string, ai []int, b []string, bi []int) bool {
	return CompareAt(a, ai, b, bi) == 0
}

func StringSliceEqual(sl1, sl2 []string) bool {
	if len(sl1) != len(sl2) {
		return false
	}
	for i, v := range sl1 {
		if v != sl2[i] {
			return false
		}
	}
	return true
}
