// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/near/borsh-go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

const (
	FormatBinary = "binary"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// fieldSpan is a leaf field of the binary encoding.
type fieldSpan struct {
	path string
	end  int
}

// binaryLayout lists the leaf fields of Schedule in encoding order with the
// offset each one ends at.
var binaryLayout = layoutOf(reflect.TypeOf(Schedule{}))

func layoutOf(t reflect.Type) []fieldSpan {
	var spans []fieldSpan
	var walk func(t reflect.Type, prefix string)
	offset := 0
	walk = func(t reflect.Type, prefix string) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			switch f.Type.Kind() {
			case reflect.Struct:
				walk(f.Type, path)
			case reflect.Uint32:
				offset += 4
				spans = append(spans, fieldSpan{path: path, end: offset})
			case reflect.Uint64:
				offset += 8
				spans = append(spans, fieldSpan{path: path, end: offset})
			default:
				panic(fmt.Sprintf("unsupported schedule field %s of kind %s", path, f.Type.Kind()))
			}
		}
	}
	walk(t, "")
	return spans
}

// BinarySize is the length of every binary encoded schedule.
func BinarySize() int {
	return binaryLayout[len(binaryLayout)-1].end
}

// EncodeBinary encodes s with borsh: every field in declaration order, little
// endian, without padding or field names. The encoding is canonical and
// suitable for hashing.
func EncodeBinary(s *Schedule) ([]byte, error) {
	return borsh.Serialize(*s)
}

// DecodeBinary decodes a schedule produced by EncodeBinary. Input that ends
// inside a field or continues past the last one is rejected.
func DecodeBinary(data []byte) (*Schedule, error) {
	size := BinarySize()
	if len(data) < size {
		for _, span := range binaryLayout {
			if len(data) < span.end {
				return nil, &DecodeError{Format: FormatBinary, Field: span.path, Err: ErrTruncated}
			}
		}
	}
	if len(data) > size {
		return nil, &DecodeError{
			Format: FormatBinary,
			Err:    fmt.Errorf("%w: %d bytes after offset %d", ErrTrailingBytes, len(data)-size, size),
		}
	}
	var s Schedule
	if err := borsh.Deserialize(&s, data); err != nil {
		return nil, &DecodeError{Format: FormatBinary, Err: err}
	}
	return &s, nil
}

// EncodeJSON encodes s as indented JSON keyed by snake_case field names.
func EncodeJSON(s *Schedule) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// DecodeJSON decodes a schedule produced by EncodeJSON. Every field is
// required; unknown fields are rejected.
func DecodeJSON(data []byte) (*Schedule, error) {
	var doc map[string]interface{}
	docDec := json.NewDecoder(bytes.NewReader(data))
	docDec.UseNumber()
	if err := docDec.Decode(&doc); err != nil {
		return nil, &DecodeError{Format: FormatJSON, Err: err}
	}
	if err := checkFields(FormatJSON, doc, reflect.TypeOf(Schedule{}), ""); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var s Schedule
	if err := dec.Decode(&s); err != nil {
		return nil, &DecodeError{Format: FormatJSON, Err: err}
	}
	return &s, nil
}

// EncodeYAML encodes s as YAML keyed by snake_case field names.
func EncodeYAML(s *Schedule) ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeYAML decodes a schedule produced by EncodeYAML with the same rules as
// DecodeJSON.
func DecodeYAML(data []byte) (*Schedule, error) {
	var doc map[interface{}]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Format: FormatYAML, Err: err}
	}
	normalized, ok := normalizeYAML(doc).(map[string]interface{})
	if !ok {
		return nil, &DecodeError{Format: FormatYAML, Err: ErrTypeMismatch}
	}
	if err := checkFields(FormatYAML, normalized, reflect.TypeOf(Schedule{}), ""); err != nil {
		return nil, err
	}

	var s Schedule
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, &DecodeError{Format: FormatYAML, Err: err}
	}
	return &s, nil
}

// Encode encodes s in the given format. Binary output is returned raw.
func Encode(s *Schedule, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatBinary:
		return EncodeBinary(s)
	case FormatJSON:
		return EncodeJSON(s)
	case FormatYAML, "yml":
		return EncodeYAML(s)
	default:
		return nil, fmt.Errorf("unsupported schedule format %q", format)
	}
}

// Decode decodes a schedule in the given format.
func Decode(data []byte, format string) (*Schedule, error) {
	switch strings.ToLower(format) {
	case FormatBinary:
		return DecodeBinary(data)
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML, "yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported schedule format %q", format)
	}
}

// checkFields verifies that doc holds exactly the fields of t, as named by
// the format's struct tags, recursing into nested structs. Integer fields must
// hold a non-negative integer within the range of the field.
func checkFields(format string, doc map[string]interface{}, t reflect.Type, prefix string) error {
	known := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get(format), ",")[0]
		known[name] = struct{}{}
		path := joinPath(prefix, name)

		v, ok := doc[name]
		if !ok || v == nil {
			return &DecodeError{Format: format, Field: path, Err: ErrMissingField}
		}
		if f.Type.Kind() != reflect.Struct {
			if !fitsUint(v, f.Type.Bits()) {
				return &DecodeError{
					Format: format,
					Field:  path,
					Err:    fmt.Errorf("%w: expected uint%d, found %v", ErrTypeMismatch, f.Type.Bits(), v),
				}
			}
			continue
		}
		nested, ok := v.(map[string]interface{})
		if !ok {
			return &DecodeError{
				Format: format,
				Field:  path,
				Err:    fmt.Errorf("%w: expected object, found %T", ErrTypeMismatch, v),
			}
		}
		if err := checkFields(format, nested, f.Type, path); err != nil {
			return err
		}
	}

	names := maps.Keys(doc)
	slices.Sort(names)
	for _, name := range names {
		if _, ok := known[name]; !ok {
			return &DecodeError{Format: format, Field: joinPath(prefix, name), Err: ErrUnknownField}
		}
	}
	return nil
}

// fitsUint reports whether a decoded JSON or YAML value is an integer in the
// range of an unsigned integer of the given size.
func fitsUint(v interface{}, bits int) bool {
	limit := ^uint64(0) >> (64 - bits)
	switch n := v.(type) {
	case json.Number:
		_, err := strconv.ParseUint(n.String(), 10, bits)
		return err == nil
	case int:
		return n >= 0 && uint64(n) <= limit
	case int64:
		return n >= 0 && uint64(n) <= limit
	case uint64:
		return n <= limit
	default:
		return false
	}
}

// normalizeYAML converts the map[interface{}]interface{} values produced by
// yaml.v2 into map[string]interface{}.
func normalizeYAML(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []interface{}:
		for i := range v {
			v[i] = normalizeYAML(v[i])
		}
		return v
	default:
		return v
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
