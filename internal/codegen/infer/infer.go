// Package infer builds the type graph the backends consume from JSON or
// YAML samples. Object keys keep their first-seen order, numbers split into
// integer and double by literal shape, and multiple samples for one
// top-level unify pairwise.
package infer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/graph"
)

// Format selects the sample syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected json or yaml)", name)
	}
}

// orderedObject is a decoded JSON/YAML object with key order preserved;
// map decoding would destroy the declared property order classes need.
type orderedObject struct {
	keys   []string
	values map[string]interface{}
}

// Infer unifies one or more samples into a single root type.
func Infer(samples [][]byte, format Format, hint string) (graph.Type, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to infer from")
	}

	var root graph.Type
	for i, sample := range samples {
		value, err := decode(sample, format)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i+1, err)
		}
		t, err := typeOf(value, hint)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i+1, err)
		}
		if root == nil {
			root = t
			continue
		}
		root, err = Unify(root, t)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i+1, err)
		}
	}
	return root, nil
}

func decode(sample []byte, format Format) (interface{}, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(sample)
	case FormatYAML:
		return decodeYAML(sample)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// decodeJSON parses token by token so object key order survives.
func decodeJSON(sample []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(sample))
	dec.UseNumber()
	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &orderedObject{values: map[string]interface{}{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key := keyTok.(string)
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if _, seen := obj.values[key]; !seen {
					obj.keys = append(obj.keys, key)
				}
				obj.values[key] = value
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			var items []interface{}
			for dec.More() {
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, value)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return items, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return tok, nil
	}
}

// decodeYAML decodes via goccy/go-yaml's ordered map form, then normalizes
// to the same shapes decodeJSON produces.
func decodeYAML(sample []byte) (interface{}, error) {
	var value interface{}
	if err := yaml.UnmarshalWithOptions(sample, &value, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return normalizeYAML(value)
}

func normalizeYAML(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case yaml.MapSlice:
		obj := &orderedObject{values: map[string]interface{}{}}
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v", item.Key)
			}
			normalized, err := normalizeYAML(item.Value)
			if err != nil {
				return nil, err
			}
			if _, seen := obj.values[key]; !seen {
				obj.keys = append(obj.keys, key)
			}
			obj.values[key] = normalized
		}
		return obj, nil
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, item := range v {
			normalized, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			items[i] = normalized
		}
		return items, nil
	case uint64:
		return json.Number(fmt.Sprintf("%d", v)), nil
	case int64:
		return json.Number(fmt.Sprintf("%d", v)), nil
	case int:
		return json.Number(fmt.Sprintf("%d", v)), nil
	case float64:
		return json.Number(fmt.Sprintf("%g", v)), nil
	default:
		return value, nil
	}
}

// typeOf infers the type of one decoded value. hint names classes and
// unions minted along the way.
func typeOf(value interface{}, hint string) (graph.Type, error) {
	switch v := value.(type) {
	case nil:
		return graph.NewPrimitive(graph.Null), nil
	case bool:
		return graph.NewPrimitive(graph.Bool), nil
	case string:
		return graph.NewPrimitive(graph.String), nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return graph.NewPrimitive(graph.Double), nil
		}
		return graph.NewPrimitive(graph.Integer), nil
	case float64:
		return graph.NewPrimitive(graph.Double), nil
	case []interface{}:
		if len(v) == 0 {
			return graph.NewArray(graph.NewPrimitive(graph.Any)), nil
		}
		var items graph.Type
		for _, item := range v {
			t, err := typeOf(item, singular(hint))
			if err != nil {
				return nil, err
			}
			if items == nil {
				items = t
				continue
			}
			items, err = Unify(items, t)
			if err != nil {
				return nil, err
			}
		}
		return graph.NewArray(items), nil
	case *orderedObject:
		properties := make([]graph.Property, 0, len(v.keys))
		for _, key := range v.keys {
			t, err := typeOf(v.values[key], key)
			if err != nil {
				return nil, err
			}
			properties = append(properties, graph.Property{JSONKey: key, Type: t})
		}
		return graph.NewClass(hint, properties), nil
	default:
		return nil, fmt.Errorf("cannot infer a type for %T", value)
	}
}

// singular derives an element hint from a container hint. Trailing-s
// stripping only; irregular plurals stay as they are.
func singular(hint string) string {
	if len(hint) > 1 && strings.HasSuffix(hint, "s") && !strings.HasSuffix(hint, "ss") {
		return hint[:len(hint)-1]
	}
	return hint
}
