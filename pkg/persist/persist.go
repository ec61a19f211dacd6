// Package persist loads and saves the baggage collection and the collapse
// map. Loads never fail: bad data is logged and dropped. Writes are refused
// until the matching load has completed so startup defaults can never
// overwrite stored data.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/store"
)

// Storage keys.
const (
	CollectionKey = "luggage-tracker-data"
	CollapsedKey  = "luggage-tracker-session-data"
)

var (
	// ErrNotLoaded is returned by a save that happens before its load.
	ErrNotLoaded = errors.New("persist: value not loaded yet")
	// ErrWrite wraps storage write failures.
	ErrWrite = errors.New("persist: write failed")
)

// Adapter reads and writes the two persisted values.
type Adapter struct {
	durable store.Storage
	session store.Storage
	logger  *zap.Logger

	mu              sync.Mutex
	collectionReady bool
	collapsedReady  bool
}

// New creates an Adapter. A nil logger discards log output.
func New(durable, session store.Storage, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{durable: durable, session: session, logger: logger}
}

// LoadCollection reads the stored collection. A missing, unreadable or
// malformed value yields an empty collection.
func (a *Adapter) LoadCollection(ctx context.Context) baggage.Collection {
	defer a.markLoaded(&a.collectionReady)

	raw, ok, err := a.durable.Get(ctx, CollectionKey)
	if err != nil {
		a.logger.Error("failed to load luggage data", zap.String("key", CollectionKey), zap.Error(err))
		return baggage.Collection{}
	}
	if !ok || raw == "" {
		return baggage.Collection{}
	}
	c, err := baggage.ValidateCollection([]byte(raw))
	if err != nil {
		a.logger.Warn("invalid baggage data found in storage, ignoring", zap.String("key", CollectionKey), zap.Error(err))
		return baggage.Collection{}
	}
	return c
}

// LoadCollapsed reads the collapse map. Anything that is not a JSON object of
// booleans yields an empty map.
func (a *Adapter) LoadCollapsed(ctx context.Context) baggage.CollapseMap {
	defer a.markLoaded(&a.collapsedReady)

	raw, ok, err := a.session.Get(ctx, CollapsedKey)
	if err != nil {
		a.logger.Error("failed to load collapsed state", zap.String("key", CollapsedKey), zap.Error(err))
		return baggage.CollapseMap{}
	}
	if !ok || raw == "" {
		return baggage.CollapseMap{}
	}
	m := baggage.CollapseMap{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		a.logger.Warn("invalid collapsed state found in storage, ignoring", zap.String("key", CollapsedKey), zap.Error(err))
		return baggage.CollapseMap{}
	}
	return m
}

// SaveCollection writes c. Failures are logged and returned wrapped in
// ErrWrite; the caller's in-memory state stays authoritative.
func (a *Adapter) SaveCollection(ctx context.Context, c baggage.Collection) error {
	if !a.loaded(&a.collectionReady) {
		return ErrNotLoaded
	}
	data, err := json.Marshal(normalize(c))
	if err != nil {
		return fmt.Errorf("persist: encode collection: %w", err)
	}
	if err := a.durable.Set(ctx, CollectionKey, string(data)); err != nil {
		a.logger.Error("failed to save luggage data", zap.String("key", CollectionKey), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// SaveCollapsed writes the collapse map.
func (a *Adapter) SaveCollapsed(ctx context.Context, m baggage.CollapseMap) error {
	if !a.loaded(&a.collapsedReady) {
		return ErrNotLoaded
	}
	if m == nil {
		m = baggage.CollapseMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("persist: encode collapsed state: %w", err)
	}
	if err := a.session.Set(ctx, CollapsedKey, string(data)); err != nil {
		a.logger.Error("failed to save collapsed state", zap.String("key", CollapsedKey), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// EraseCollection removes the stored collection entirely.
func (a *Adapter) EraseCollection(ctx context.Context) error {
	if !a.loaded(&a.collectionReady) {
		return ErrNotLoaded
	}
	if err := a.durable.Remove(ctx, CollectionKey); err != nil {
		a.logger.Error("failed to erase luggage data", zap.String("key", CollectionKey), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (a *Adapter) markLoaded(flag *bool) {
	a.mu.Lock()
	*flag = true
	a.mu.Unlock()
}

func (a *Adapter) loaded(flag *bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return *flag
}

// normalize makes sure every baggage serializes items as an array, never
// null, so the stored value always validates.
func normalize(c baggage.Collection) baggage.Collection {
	out := c.Clone()
	for i := range out {
		if out[i].Items == nil {
			out[i].Items = []baggage.Item{}
		}
	}
	return out
}
