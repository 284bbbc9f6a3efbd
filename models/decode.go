package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Extra holds response keys a record type does not declare, so newer API
// fields survive decoding untouched.
type Extra map[string]json.RawMessage

// Get decodes the extra key into out. It reports false when the key is absent.
func (e Extra) Get(key string, out any) (bool, error) {
	raw, ok := e[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// defaulter is implemented by records that fill server-omitted fields after decoding.
type defaulter interface {
	setDefaults()
}

var extraType = reflect.TypeOf(Extra(nil))

type fieldInfo struct {
	index    []int
	name     string
	aliases  []string
	required bool
}

type structLayout struct {
	fields []fieldInfo
	extra  []int
	known  map[string]struct{}
}

var layoutCache sync.Map // reflect.Type -> *structLayout

func layoutFor(t reflect.Type) *structLayout {
	if cached, ok := layoutCache.Load(t); ok {
		return cached.(*structLayout)
	}
	layout := &structLayout{known: make(map[string]struct{})}
	collectFields(t, nil, layout)
	actual, _ := layoutCache.LoadOrStore(t, layout)
	return actual.(*structLayout)
}

func collectFields(t reflect.Type, prefix []int, layout *structLayout) {
	for i := range t.NumField() {
		f := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if f.Type == extraType {
			layout.extra = index
			continue
		}

		tag := f.Tag.Get("json")
		if f.Anonymous && f.Type.Kind() == reflect.Struct && tag == "" {
			collectFields(f.Type, index, layout)
			continue
		}
		if !f.IsExported() || tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		if _, dup := layout.known[name]; dup {
			continue
		}

		fs := fieldInfo{
			index:    index,
			name:     name,
			required: !hasOption(opts, "omitempty") && !hasOption(opts, "omitzero"),
		}
		layout.known[name] = struct{}{}
		if alias := f.Tag.Get("alias"); alias != "" {
			for _, a := range strings.Split(alias, ",") {
				fs.aliases = append(fs.aliases, a)
				layout.known[a] = struct{}{}
			}
		}
		layout.fields = append(layout.fields, fs)
	}
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

// Decode maps a JSON object onto out, which must be a pointer to a record
// struct. It is the single conversion rule for every response type:
//
//   - fields whose json tag lacks omitempty are required; absent or null
//     values fail with a DecodeError naming the field
//   - the alias tag lists alternate wire names for the same field
//   - malformed values (bad UUIDs, timestamps, wrong JSON types) fail with a
//     DecodeError carrying the dotted field path
//   - keys the type does not declare are kept in its Extra field
//
// out is only written when decoding succeeds.
func Decode(resource string, data []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode %s: target must be a non-nil struct pointer, got %T", resource, out)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &DecodeError{Resource: resource, Reason: "empty response"}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return &DecodeError{Resource: resource, Reason: "expected a JSON object"}
	}

	fresh := reflect.New(rv.Elem().Type()).Elem()
	layout := layoutFor(fresh.Type())

	for _, f := range layout.fields {
		value, ok := lookup(raw, f)
		if !ok {
			if f.required {
				return &DecodeError{Resource: resource, Field: f.name, Reason: reasonMissing}
			}
			continue
		}
		if err := decodeValue(value, fresh.FieldByIndex(f.index)); err != nil {
			return fieldError(resource, f.name, err)
		}
	}

	if layout.extra != nil {
		extra := make(Extra)
		for key, value := range raw {
			if _, ok := layout.known[key]; !ok {
				extra[key] = value
			}
		}
		if len(extra) > 0 {
			fresh.FieldByIndex(layout.extra).Set(reflect.ValueOf(extra))
		}
	}

	if d, ok := fresh.Addr().Interface().(defaulter); ok {
		d.setDefaults()
	}

	rv.Elem().Set(fresh)
	return nil
}

// DecodeItems decodes a JSON array element by element. Failures are
// reported as key[i].field against resource.
func DecodeItems[T any](resource, key string, items []json.RawMessage) ([]T, error) {
	out := make([]T, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &out[i]); err != nil {
			return nil, fieldError(resource, fmt.Sprintf("%s[%d]", key, i), err)
		}
	}
	return out, nil
}

func lookup(raw map[string]json.RawMessage, f fieldInfo) (json.RawMessage, bool) {
	if value, ok := raw[f.name]; ok && !isNull(value) {
		return value, true
	}
	for _, alias := range f.aliases {
		if value, ok := raw[alias]; ok && !isNull(value) {
			return value, true
		}
	}
	return nil, false
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// decodeValue unmarshals one field. Slices are decoded per element so
// errors can carry the index.
func decodeValue(value json.RawMessage, field reflect.Value) error {
	t := field.Type()
	if t.Kind() != reflect.Slice || t == rawMessageType || t.Elem().Kind() == reflect.Uint8 {
		return json.Unmarshal(value, field.Addr().Interface())
	}

	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return err
	}
	slice := reflect.MakeSlice(t, len(items), len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, slice.Index(i).Addr().Interface()); err != nil {
			return fieldError("", fmt.Sprintf("[%d]", i), err)
		}
	}
	field.Set(slice)
	return nil
}

// fieldError attributes err to field, joining paths of nested DecodeErrors.
func fieldError(resource, field string, err error) *DecodeError {
	var nested *DecodeError
	if !errors.As(err, &nested) {
		return &DecodeError{Resource: resource, Field: field, Reason: err.Error()}
	}

	path := field
	switch {
	case nested.Field == "":
	case strings.HasPrefix(nested.Field, "["):
		path += nested.Field
	default:
		path += "." + nested.Field
	}
	return &DecodeError{Resource: resource, Field: path, Reason: nested.Reason}
}
