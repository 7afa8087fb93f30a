package relax

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/larmor/internal/domain/model"
)

// decodeSection collects the rows of one observable section, flattened
// across its loops in source order. An absent section key yields no rows
// and no error. A loop without a row list is skipped. Anything else out
// of shape is an error.
func decodeSection(raw model.RawEntry, key string) ([]map[string]any, error) {
	section, ok := raw[key]
	if !ok || section == nil {
		return nil, nil
	}

	loops, ok := section.([]any)
	if !ok {
		return nil, fmt.Errorf("section is %T, want a loop list", section)
	}

	var rows []map[string]any
	for i, l := range loops {
		loop, ok := l.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("loop %d is %T, want an object", i, l)
		}
		data, ok := loop[fieldRows]
		if !ok || data == nil {
			continue
		}
		list, ok := data.([]any)
		if !ok {
			return nil, fmt.Errorf("loop %d rows are %T, want a list", i, data)
		}
		for j, r := range list {
			row, ok := r.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("loop %d row %d is %T, want an object", i, j, r)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// floatField coerces a row field to float64. An absent or null field is
// 0.0 by archive convention, never a failure; a present value that does
// not parse is an error.
func floatField(row map[string]any, key string) (float64, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %s: %q is not numeric", key, n.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("field %s: %q is not numeric", key, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %s: unexpected type %T", key, v)
	}
}

// intField coerces a row field to int. Absent or null means unresolved
// and decodes to 0; a present value must be a whole number.
func intField(row map[string]any, key string) (int, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, fmt.Errorf("field %s: %v is not an integer", key, n)
		}
		return i, nil
	case int:
		return n, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("field %s: %q is not an integer", key, n.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("field %s: %q is not an integer", key, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("field %s: unexpected type %T", key, v)
	}
}

// stringField reads a row label, falling back to def when the field is
// absent or null.
func stringField(row map[string]any, key, def string) (string, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: unexpected type %T", key, v)
	}
	return s, nil
}
