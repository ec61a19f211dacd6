package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/luggage/pkg/store"
)

// ErrNoWatch is returned by Watch when the storage cannot report changes.
var ErrNoWatch = errors.New("app: storage does not support watching")

// Watcher reports changes made to the stored data by other processes.
type Watcher interface {
	Watch(ctx context.Context, onErr func(error)) (<-chan store.Event, error)
}

// Watch subscribes to storage change events. Call Open to pick up the
// changes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Watcher == nil {
		return nil, ErrNoWatch
	}
	return s.Watcher.Watch(ctx, func(err error) {
		s.log().Warn("storage watch error", zap.Error(err))
	})
}
