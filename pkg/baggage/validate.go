package baggage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrMalformed is returned when persisted data does not have the shape of a
// Collection.
var ErrMalformed = errors.New("baggage: malformed collection")

// IsWellFormedCollection reports whether data is a JSON array of baggage in
// which every baggage and item field has its expected type. An empty array is
// well formed.
func IsWellFormedCollection(data []byte) bool {
	_, err := ValidateCollection(data)
	return err == nil
}

// ValidateCollection checks the shape of data and decodes it. The error wraps
// ErrMalformed and names the first offending path.
func ValidateCollection(data []byte) (Collection, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrMalformed, kindOf(raw))
	}
	for i, v := range list {
		if err := checkBaggage(fmt.Sprintf("[%d]", i), v); err != nil {
			return nil, err
		}
	}

	c := make(Collection, 0, len(list))
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i := range c {
		if c[i].Items == nil {
			c[i].Items = []Item{}
		}
	}
	return c, nil
}

func checkBaggage(path string, v interface{}) error {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: %s: expected object, got %s", ErrMalformed, path, kindOf(v))
	}
	for _, field := range []string{"id", "type", "nickname"} {
		if err := expectString(path, obj, field); err != nil {
			return err
		}
	}
	items, ok := obj["items"].([]interface{})
	if !ok {
		return fmt.Errorf("%w: %s.items: expected array, got %s", ErrMalformed, path, kindOf(obj["items"]))
	}
	for j, it := range items {
		if err := checkItem(fmt.Sprintf("%s.items[%d]", path, j), it); err != nil {
			return err
		}
	}
	return nil
}

func checkItem(path string, v interface{}) error {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: %s: expected object, got %s", ErrMalformed, path, kindOf(v))
	}
	for _, field := range []string{"id", "name", "icon"} {
		if err := expectString(path, obj, field); err != nil {
			return err
		}
	}
	q, ok := obj["quantity"].(float64)
	if !ok {
		return fmt.Errorf("%w: %s.quantity: expected number, got %s", ErrMalformed, path, kindOf(obj["quantity"]))
	}
	if q != math.Trunc(q) || q < 1 || q > MaxQuantity {
		return fmt.Errorf("%w: %s.quantity: expected positive integer, got %v", ErrMalformed, path, q)
	}
	if _, ok := obj["packed"].(bool); !ok {
		return fmt.Errorf("%w: %s.packed: expected boolean, got %s", ErrMalformed, path, kindOf(obj["packed"]))
	}
	return nil
}

func expectString(path string, obj map[string]interface{}, field string) error {
	if _, ok := obj[field].(string); !ok {
		return fmt.Errorf("%w: %s.%s: expected string, got %s", ErrMalformed, path, field, kindOf(obj[field]))
	}
	return nil
}

func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
