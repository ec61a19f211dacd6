// Package baggage defines the luggage domain: baggage containers, the items
// packed into them and the collection that holds them.
package baggage

import (
	"fmt"
	"strings"
)

// Type identifies the kind of container.
type Type string

const (
	// TypeCarryOn is cabin luggage.
	TypeCarryOn Type = "carry-on"
	// TypeMediumChecked is a medium hold suitcase.
	TypeMediumChecked Type = "medium-checked"
	// TypeLargeChecked is a large hold suitcase.
	TypeLargeChecked Type = "large-checked"
	// TypeBackpack is a backpack or daypack.
	TypeBackpack Type = "backpack"
	// TypeOther covers anything else and is the fallback for unknown input.
	TypeOther Type = "other"
)

// AllTypes returns the supported baggage types in display order.
func AllTypes() []Type {
	return []Type{
		TypeCarryOn,
		TypeMediumChecked,
		TypeLargeChecked,
		TypeBackpack,
		TypeOther,
	}
}

// ParseType converts a string to a Type or returns an error for unknown values.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TypeOther, fmt.Errorf("baggage: unknown type %q", raw)
}

// TypeOrDefault parses raw and falls back to TypeOther when it is absent or
// not recognized.
func TypeOrDefault(raw string) Type {
	t, err := ParseType(raw)
	if err != nil {
		return TypeOther
	}
	return t
}

// Valid reports whether t is one of AllTypes.
func (t Type) Valid() bool {
	_, err := ParseType(string(t))
	return err == nil
}

// Label renders the type for humans, e.g. "carry on".
func (t Type) Label() string {
	return strings.Replace(string(t), "-", " ", 1)
}

func (t Type) String() string {
	return string(t)
}
