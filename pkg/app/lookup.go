package app

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/luggage/pkg/baggage"
)

// ErrAmbiguous is returned when a reference matches more than one baggage.
var ErrAmbiguous = errors.New("app: ambiguous reference")

// ResolveBaggage finds a baggage by id, or by nickname ignoring case.
func (s *Service) ResolveBaggage(ref string) (baggage.Baggage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if i, ok := s.collection.Find(ref); ok {
		return s.collection[i].Clone(), nil
	}
	found := -1
	for i, b := range s.collection {
		if b.Nickname != "" && strings.EqualFold(b.Nickname, ref) {
			if found >= 0 {
				return baggage.Baggage{}, fmt.Errorf("%w: %q names more than one baggage, use the id", ErrAmbiguous, ref)
			}
			found = i
		}
	}
	if found < 0 {
		return baggage.Baggage{}, fmt.Errorf("%w: baggage %q", ErrNotFound, ref)
	}
	return s.collection[found].Clone(), nil
}

// ResolveItem finds an item of b by id, or by name ignoring case. When a
// name matches both a packed and an unpacked item, preferPacked picks one.
func ResolveItem(b baggage.Baggage, ref string, preferPacked bool) (baggage.Item, error) {
	ref = strings.TrimSpace(ref)
	if i, ok := b.Find(ref); ok {
		return b.Items[i], nil
	}
	var match *baggage.Item
	for i := range b.Items {
		it := &b.Items[i]
		if !strings.EqualFold(it.Name, ref) {
			continue
		}
		if match == nil || it.Packed == preferPacked {
			match = it
		}
	}
	if match == nil {
		return baggage.Item{}, fmt.Errorf("%w: item %q in %s", ErrNotFound, ref, b.DisplayName())
	}
	return *match, nil
}
