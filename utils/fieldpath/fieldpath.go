package fieldpath

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// segment is a single step of a parsed field path
type segment struct {
	name    string // field or key name (when isIndex is false)
	index   int    // array index (when isIndex is true)
	isIndex bool
}

// FieldAccessError field access error
type FieldAccessError struct {
	Path    string
	Message string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("field access error for path '%s': %s", e.Path, e.Message)
}

// IsNestedField checks if a field name contains dots or array indices
func IsNestedField(fieldName string) bool {
	return strings.Contains(fieldName, ".") || strings.Contains(fieldName, "[")
}

// parsePath splits a path into segments.
// Supported formats:
// - "user.region" (nested fields)
// - "items[0]" (array index, negative counts from the end)
// - "orders[0].amount" (field of array element)
func parsePath(fieldPath string) ([]segment, error) {
	var segments []segment

	for _, part := range strings.Split(fieldPath, ".") {
		if part == "" {
			continue
		}

		rest := part
		bracket := strings.Index(rest, "[")
		if bracket > 0 {
			segments = append(segments, segment{name: rest[:bracket]})
			rest = rest[bracket:]
		} else if bracket != 0 {
			segments = append(segments, segment{name: rest})
			continue
		}

		for len(rest) > 0 {
			if !strings.HasPrefix(rest, "[") {
				return nil, &FieldAccessError{Path: fieldPath, Message: "unexpected characters after index"}
			}
			close := strings.Index(rest, "]")
			if close == -1 {
				return nil, &FieldAccessError{Path: fieldPath, Message: "unmatched bracket in field path"}
			}
			idx, err := strconv.Atoi(strings.TrimSpace(rest[1:close]))
			if err != nil {
				return nil, &FieldAccessError{Path: fieldPath, Message: "index must be an integer"}
			}
			segments = append(segments, segment{index: idx, isIndex: true})
			rest = rest[close+1:]
		}
	}

	if len(segments) == 0 {
		return nil, &FieldAccessError{Path: fieldPath, Message: "empty field path"}
	}
	return segments, nil
}

// GetNestedField gets a value from nested maps, slices or structs.
// The second return value reports whether every step of the path resolved.
func GetNestedField(data interface{}, fieldPath string) (interface{}, bool) {
	if fieldPath == "" {
		return nil, false
	}

	segments, err := parsePath(fieldPath)
	if err != nil {
		return nil, false
	}

	current := data
	for _, seg := range segments {
		var found bool
		if seg.isIndex {
			current, found = elementAt(current, seg.index)
		} else {
			current, found = fieldValue(current, seg.name)
		}
		if !found {
			return nil, false
		}
	}
	return current, true
}

// ValidateFieldPath reports whether the path is well formed
func ValidateFieldPath(fieldPath string) error {
	if fieldPath == "" {
		return &FieldAccessError{Path: fieldPath, Message: "empty field path"}
	}
	_, err := parsePath(fieldPath)
	return err
}

// fieldValue resolves one named step on a map or struct
func fieldValue(data interface{}, name string) (interface{}, bool) {
	if data == nil {
		return nil, false
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mapVal := v.MapIndex(reflect.ValueOf(name))
		if mapVal.IsValid() {
			return mapVal.Interface(), true
		}
		return nil, false
	case reflect.Struct:
		fieldVal := v.FieldByName(name)
		if fieldVal.IsValid() && fieldVal.CanInterface() {
			return fieldVal.Interface(), true
		}
		return nil, false
	default:
		return nil, false
	}
}

// elementAt resolves one index step on a slice or array.
// Negative indices count from the end.
func elementAt(data interface{}, index int) (interface{}, bool) {
	if data == nil {
		return nil, false
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		length := v.Len()
		if index < 0 {
			index = length + index
		}
		if index < 0 || index >= length {
			return nil, false
		}
		return v.Index(index).Interface(), true
	default:
		return nil, false
	}
}
