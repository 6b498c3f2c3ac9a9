package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/constants"
	"github.com/KuroZantetsuken/ARC-Raiders-Data-CLI/pkg/errors"
)

// FormatFor returns the record format for a filename, based on its extension.
// ok is false for files that are not item records.
func FormatFor(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case constants.JSONExt:
		return FormatJSON, true
	case constants.YAMLExt, ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Decode parses one serialized item record. The format is chosen by the
// filename extension; name is only used for error reporting beyond that.
func Decode(name string, data []byte) (*Item, error) {
	format, ok := FormatFor(name)
	if !ok {
		return nil, errors.NewParseError("record", name, "unsupported record extension", nil)
	}

	switch format {
	case FormatYAML:
		return decodeYAML(name, data)
	default:
		return decodeJSON(name, data)
	}
}

// Encode serializes the record back to its source format, two-space
// indented, with non-ASCII characters preserved literally.
func (it *Item) Encode() ([]byte, error) {
	if it.format == FormatYAML {
		return encodeYAML(it)
	}
	return encodeJSON(it)
}

func decodeJSON(name string, data []byte) (*Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.WrapParse("json", name, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.NewParseError("json", name, "record is not a JSON object", nil)
	}

	fields, err := decodeJSONObject(dec)
	if err != nil {
		return nil, errors.WrapParse("json", name, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewParseError("json", name, "trailing data after record", nil)
	}
	return &Item{fields: fields, format: FormatJSON}, nil
}

// decodeJSONObject reads key/value pairs up to the closing brace. Nested
// objects land in insertion-ordered maps, mirroring fromMapSlice on the
// YAML side, so field order survives the round trip at every depth and
// nested mappings stay readable as recipes.
func decodeJSONObject(dec *json.Decoder) (*orderedmap.OrderedMap[string, any], error) {
	fields := orderedmap.New[string, any]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		fields.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
	}
	return tok, nil
}

func decodeJSONArray(dec *json.Decoder) ([]any, error) {
	out := []any{}
	for dec.More() {
		elem, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeJSON(it *Item) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(it.fields); err != nil {
		return nil, errors.WrapParse("json", it.ID(), err)
	}
	return buf.Bytes(), nil
}

func decodeYAML(name string, data []byte) (*Item, error) {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, errors.WrapParse("yaml", name, err)
	}
	return &Item{fields: fromMapSlice(ms), format: FormatYAML}, nil
}

func encodeYAML(it *Item) ([]byte, error) {
	data, err := yaml.MarshalWithOptions(toMapSlice(it.fields), yaml.Indent(2))
	if err != nil {
		return nil, errors.WrapParse("yaml", it.ID(), err)
	}
	return data, nil
}

// fromMapSlice converts goccy's ordered mapping into the item field map,
// recursing through nested mappings and sequences.
func fromMapSlice(ms yaml.MapSlice) *orderedmap.OrderedMap[string, any] {
	fields := orderedmap.New[string, any]()
	for _, entry := range ms {
		key, ok := entry.Key.(string)
		if !ok {
			key = fmt.Sprint(entry.Key)
		}
		fields.Set(key, fromYAMLValue(entry.Value))
	}
	return fields
}

func fromYAMLValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return fromMapSlice(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = fromYAMLValue(elem)
		}
		return out
	default:
		return val
	}
}

// toMapSlice converts the item field map back to goccy's ordered mapping.
func toMapSlice(fields *orderedmap.OrderedMap[string, any]) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, fields.Len())
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		ms = append(ms, yaml.MapItem{Key: pair.Key, Value: toYAMLValue(pair.Value)})
	}
	return ms
}

func toYAMLValue(v any) any {
	switch val := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		return toMapSlice(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = toYAMLValue(elem)
		}
		return out
	default:
		return val
	}
}
