// Package app holds the luggage collection and applies every user action to
// it. UIs and CLIs share this logic; they only render state and effects.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
	"tableflip.dev/luggage/pkg/effect"
	"tableflip.dev/luggage/pkg/interchange"
	"tableflip.dev/luggage/pkg/persist"
)

var (
	ErrNotFound    = errors.New("app: not found")
	ErrBlankName   = errors.New("app: item name is blank")
	ErrNotOpen     = errors.New("app: service not opened")
	ErrNotEmpty    = errors.New("app: collection is not empty")
	ErrInvalidType = errors.New("app: invalid baggage type")
)

// Service owns the collection and the collapse map. Every method is safe for
// concurrent use; mutations are serialized and each one persists its result
// before returning.
type Service struct {
	Persistence *persist.Adapter
	IDs         baggage.IDGenerator
	Sink        effect.Sink
	Confirmer   Confirmer
	Logger      *zap.Logger
	Watcher     Watcher

	mu         sync.Mutex
	opened     bool
	collection baggage.Collection
	collapsed  baggage.CollapseMap
}

// Open loads the collection and then the collapse map. Collapse entries for
// unknown baggage are pruned. Calling Open again reloads from storage.
func (s *Service) Open(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection = s.Persistence.LoadCollection(ctx)
	s.collapsed = s.Persistence.LoadCollapsed(ctx).Prune(s.collection)
	s.opened = true
	s.log().Debug("opened collection", zap.Int("baggages", len(s.collection)))
	return nil
}

// Collection returns a copy of the current collection.
func (s *Service) Collection() baggage.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Clone()
}

// Collapsed returns a copy of the collapse map.
func (s *Service) Collapsed() baggage.CollapseMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collapsed.Clone()
}

// Baggage returns a copy of the baggage with id.
func (s *Service) Baggage(id string) (baggage.Baggage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.collection.Find(id)
	if !ok {
		return baggage.Baggage{}, fmt.Errorf("%w: baggage %q", ErrNotFound, id)
	}
	return s.collection[i].Clone(), nil
}

// AddBaggage appends an empty, expanded baggage of type t.
func (s *Service) AddBaggage(ctx context.Context, t baggage.Type) (baggage.Baggage, error) {
	if !t.Valid() {
		return baggage.Baggage{}, fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return baggage.Baggage{}, err
	}

	b := baggage.New(s.ids().BaggageID(), t)
	s.collection = append(s.collection, b)
	s.collapsed[b.ID] = false
	s.saveCollection(ctx)
	s.saveCollapsed(ctx)
	s.notify(effect.NewAddedBaggage(string(t)))
	return b.Clone(), nil
}

// UpdateBaggage replaces the stored baggage that has b.ID.
func (s *Service) UpdateBaggage(ctx context.Context, b baggage.Baggage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	i, ok := s.collection.Find(b.ID)
	if !ok {
		return fmt.Errorf("%w: baggage %q", ErrNotFound, b.ID)
	}
	s.collection[i] = b.Clone()
	s.saveCollection(ctx)
	return nil
}

// DeleteBaggage removes the baggage with id. Baggage holding items are only
// removed after the Confirmer approves; the result reports whether the
// baggage was deleted.
func (s *Service) DeleteBaggage(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return false, err
	}
	i, ok := s.collection.Find(id)
	if !ok {
		return false, fmt.Errorf("%w: baggage %q", ErrNotFound, id)
	}
	b := s.collection[i]
	if len(b.Items) > 0 {
		yes, err := s.confirmer().Confirm(ctx, DeletePrompt(b.DisplayName()))
		if err != nil {
			return false, err
		}
		if !yes {
			return false, nil
		}
	}

	out := make(baggage.Collection, 0, len(s.collection)-1)
	out = append(out, s.collection[:i]...)
	s.collection = append(out, s.collection[i+1:]...)
	delete(s.collapsed, id)
	s.saveCollection(ctx)
	s.saveCollapsed(ctx)
	s.notify(effect.NewDeletedBaggage(b.Nickname))
	return true, nil
}

// ClearAll removes every baggage after a single confirmation. The stored
// collection is erased rather than overwritten with an empty list.
func (s *Service) ClearAll(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return false, err
	}
	yes, err := s.confirmer().Confirm(ctx, ClearPrompt)
	if err != nil || !yes {
		return false, err
	}

	s.collection = baggage.Collection{}
	s.collapsed = baggage.CollapseMap{}
	if err := s.Persistence.EraseCollection(ctx); err != nil {
		s.notify(effect.NewError(err))
	}
	s.saveCollapsed(ctx)
	s.notify(effect.NewClearedAll())
	return true, nil
}

// SetAllCollapsed collapses or expands every baggage in one update.
func (s *Service) SetAllCollapsed(ctx context.Context, collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	m := make(baggage.CollapseMap, len(s.collection))
	for _, b := range s.collection {
		m[b.ID] = collapsed
	}
	s.collapsed = m
	s.saveCollapsed(ctx)
	return nil
}

// SetCollapsed collapses or expands one baggage.
func (s *Service) SetCollapsed(ctx context.Context, id string, collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	if _, ok := s.collection.Find(id); !ok {
		return fmt.Errorf("%w: baggage %q", ErrNotFound, id)
	}
	s.collapsed[id] = collapsed
	s.saveCollapsed(ctx)
	return nil
}

// ToggleCollapsed flips the collapse flag of one baggage and returns the new
// value.
func (s *Service) ToggleCollapsed(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return false, err
	}
	if _, ok := s.collection.Find(id); !ok {
		return false, fmt.Errorf("%w: baggage %q", ErrNotFound, id)
	}
	s.collapsed[id] = !s.collapsed[id]
	s.saveCollapsed(ctx)
	return s.collapsed[id], nil
}

// Export writes the collection as CSV to w and returns the number of rows.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	s.mu.Lock()
	rows := interchange.Export(s.collection)
	s.mu.Unlock()

	if err := interchange.Encode(w, rows); err != nil {
		s.notify(effect.NewError(err))
		return 0, err
	}
	path := interchange.FileName
	if named, ok := w.(interface{ Name() string }); ok {
		path = named.Name()
	}
	s.notify(effect.NewExported(path, len(rows)))
	return len(rows), nil
}

// Import decodes CSV from r and replaces the whole collection with the
// result. The collapse map is reset so every imported baggage is expanded.
// On a decode failure nothing changes.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	s.mu.Lock()
	err := s.ready()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	res := <-interchange.DecodeAsync(ctx, r)
	if res.Err != nil {
		s.log().Warn("failed to import csv", zap.Error(res.Err))
		s.notify(effect.NewError(res.Err))
		return res.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := interchange.Import(res.Records, s.ids())
	m := make(baggage.CollapseMap, len(c))
	items := 0
	for _, b := range c {
		m[b.ID] = false
		items += len(b.Items)
	}
	s.collection = c
	s.collapsed = m
	s.saveCollection(ctx)
	s.saveCollapsed(ctx)
	s.notify(effect.NewImported(len(c), items))
	return nil
}

// Seed fills an empty collection with the sample luggage.
func (s *Service) Seed(ctx context.Context) (baggage.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	if len(s.collection) > 0 {
		return nil, ErrNotEmpty
	}
	s.collection = catalog.Seed(s.ids())
	s.collapsed = make(baggage.CollapseMap, len(s.collection))
	for _, b := range s.collection {
		s.collapsed[b.ID] = false
	}
	s.saveCollection(ctx)
	s.saveCollapsed(ctx)
	return s.collection.Clone(), nil
}

func (s *Service) ready() error {
	if !s.opened {
		return ErrNotOpen
	}
	return nil
}

func (s *Service) saveCollection(ctx context.Context) {
	if err := s.Persistence.SaveCollection(ctx, s.collection); err != nil {
		s.notify(effect.NewError(err))
	}
}

func (s *Service) saveCollapsed(ctx context.Context) {
	if err := s.Persistence.SaveCollapsed(ctx, s.collapsed); err != nil {
		s.notify(effect.NewError(err))
	}
}

func (s *Service) notify(e effect.Effect) {
	if e.Kind == effect.None || s.Sink == nil {
		return
	}
	s.Sink.Notify(e)
}

func (s *Service) ids() baggage.IDGenerator {
	if s.IDs == nil {
		s.IDs = baggage.NewIDGenerator()
	}
	return s.IDs
}

func (s *Service) confirmer() Confirmer {
	if s.Confirmer == nil {
		return NeverConfirm
	}
	return s.Confirmer
}

func (s *Service) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrBlankName
	}
	return name, nil
}
