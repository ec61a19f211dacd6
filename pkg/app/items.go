package app

import (
	"context"
	"fmt"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/effect"
	"tableflip.dev/luggage/pkg/reconcile"
)

// AddItem adds one unit of name to a baggage. A blank icon falls back to the
// default icon.
func (s *Service) AddItem(ctx context.Context, bagID, name, icon string) (baggage.Baggage, error) {
	name, err := cleanName(name)
	if err != nil {
		return baggage.Baggage{}, err
	}
	if icon == "" {
		icon = baggage.DefaultIcon
	}
	return s.mutateItems(ctx, bagID, func(items []baggage.Item) ([]baggage.Item, effect.Effect, error) {
		out, eff := reconcile.AddItem(items, name, icon, s.ids())
		return out, eff, nil
	})
}

// UpdateItem replaces an item, merging it into a packed sibling when the
// update packs it. The quantity is checked like SetQuantity.
func (s *Service) UpdateItem(ctx context.Context, bagID string, item baggage.Item) (baggage.Baggage, error) {
	return s.mutateItems(ctx, bagID, func(items []baggage.Item) ([]baggage.Item, effect.Effect, error) {
		if _, ok := (baggage.Baggage{Items: items}).Find(item.ID); !ok {
			return nil, effect.Effect{}, fmt.Errorf("%w: item %q", ErrNotFound, item.ID)
		}
		if err := reconcile.CheckQuantity(item.Quantity); err != nil {
			return nil, effect.Effect{}, err
		}
		out, eff := reconcile.UpdateItem(items, item)
		return out, eff, nil
	})
}

// SetQuantity sets an item's quantity. Quantities below one return
// reconcile.ErrInvalidQuantity; delete the item instead. Quantities above
// baggage.MaxQuantity return reconcile.ErrQuantityTooLarge.
func (s *Service) SetQuantity(ctx context.Context, bagID, itemID string, quantity int) (baggage.Baggage, error) {
	return s.mutateItems(ctx, bagID, func(items []baggage.Item) ([]baggage.Item, effect.Effect, error) {
		if _, ok := (baggage.Baggage{Items: items}).Find(itemID); !ok {
			return nil, effect.Effect{}, fmt.Errorf("%w: item %q", ErrNotFound, itemID)
		}
		return reconcile.SetQuantity(items, itemID, quantity)
	})
}

// TogglePacked packs or unpacks one item.
func (s *Service) TogglePacked(ctx context.Context, bagID, itemID string) (baggage.Baggage, error) {
	return s.mutateItems(ctx, bagID, func(items []baggage.Item) ([]baggage.Item, effect.Effect, error) {
		if _, ok := (baggage.Baggage{Items: items}).Find(itemID); !ok {
			return nil, effect.Effect{}, fmt.Errorf("%w: item %q", ErrNotFound, itemID)
		}
		out, eff := reconcile.TogglePacked(items, itemID)
		return out, eff, nil
	})
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, bagID, itemID string) (baggage.Baggage, error) {
	return s.mutateItems(ctx, bagID, func(items []baggage.Item) ([]baggage.Item, effect.Effect, error) {
		out, removed := reconcile.DeleteItem(items, itemID)
		if removed == nil {
			return nil, effect.Effect{}, fmt.Errorf("%w: item %q", ErrNotFound, itemID)
		}
		return out, effect.NewRemovedItem(removed.Name), nil
	})
}

// TogglePackAll packs every item, or unpacks every item when all are packed.
func (s *Service) TogglePackAll(ctx context.Context, bagID string) (baggage.Baggage, error) {
	return s.mutateItems(ctx, bagID, func(items []baggage.Item) ([]baggage.Item, effect.Effect, error) {
		return reconcile.TogglePackAll(items), effect.Effect{}, nil
	})
}

// SetNickname renames a baggage.
func (s *Service) SetNickname(ctx context.Context, bagID, nickname string) (baggage.Baggage, error) {
	return s.mutateBaggage(ctx, bagID, func(b baggage.Baggage) (baggage.Baggage, error) {
		return reconcile.SetNickname(b, nickname), nil
	})
}

// SetType changes the type of a baggage.
func (s *Service) SetType(ctx context.Context, bagID string, t baggage.Type) (baggage.Baggage, error) {
	if !t.Valid() {
		return baggage.Baggage{}, fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	return s.mutateBaggage(ctx, bagID, func(b baggage.Baggage) (baggage.Baggage, error) {
		return reconcile.SetType(b, t), nil
	})
}

func (s *Service) mutateItems(ctx context.Context, bagID string, fn func([]baggage.Item) ([]baggage.Item, effect.Effect, error)) (baggage.Baggage, error) {
	var eff effect.Effect
	b, err := s.mutateBaggage(ctx, bagID, func(b baggage.Baggage) (baggage.Baggage, error) {
		items, e, err := fn(b.Items)
		if err != nil {
			return b, err
		}
		eff = e
		b.Items = items
		return b, nil
	})
	if err == nil {
		s.notify(eff)
	}
	return b, err
}

func (s *Service) mutateBaggage(ctx context.Context, bagID string, fn func(baggage.Baggage) (baggage.Baggage, error)) (baggage.Baggage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return baggage.Baggage{}, err
	}
	i, ok := s.collection.Find(bagID)
	if !ok {
		return baggage.Baggage{}, fmt.Errorf("%w: baggage %q", ErrNotFound, bagID)
	}
	updated, err := fn(s.collection[i].Clone())
	if err != nil {
		return baggage.Baggage{}, err
	}
	s.collection[i] = updated
	s.saveCollection(ctx)
	return updated.Clone(), nil
}
