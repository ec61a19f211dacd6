package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/luggage/pkg/logging"
	"tableflip.dev/luggage/pkg/persist"
	"tableflip.dev/luggage/pkg/store"
)

// Env is an opened Service together with the stores and logger behind it.
type Env struct {
	Config  *store.Config
	Logger  *zap.Logger
	Durable store.Storage
	Session store.Storage
	Service *Service
}

// Load builds and opens a Service from cfg. A nil cfg is read with
// store.LoadConfig.
func Load(ctx context.Context, cfg *store.Config) (*Env, error) {
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}

	var outputs []string
	if cfg.Log.File != "" {
		outputs = append(outputs, cfg.Log.File)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development, outputs...)
	if err != nil {
		return nil, err
	}

	durable, err := store.OpenDurable(cfg)
	if err != nil {
		return nil, fmt.Errorf("app: open storage: %w", err)
	}
	session, err := store.OpenSession(ctx, cfg)
	if err != nil {
		_ = store.Close(durable)
		return nil, fmt.Errorf("app: open session storage: %w", err)
	}
	logger.Debug("opened stores",
		zap.String("storage", cfg.Storage),
		zap.String("session", cfg.Session.Backend),
		zap.String("path", cfg.BasePath()))

	svc := &Service{
		Persistence: persist.New(durable, session, logger),
		Logger:      logger,
	}
	if w, ok := durable.(Watcher); ok {
		svc.Watcher = w
	}
	if err := svc.Open(ctx); err != nil {
		_ = store.Close(durable)
		_ = store.Close(session)
		return nil, err
	}

	return &Env{
		Config:  cfg,
		Logger:  logger,
		Durable: durable,
		Session: session,
		Service: svc,
	}, nil
}

// Close releases the stores and flushes the logger.
func (e *Env) Close() error {
	err := errors.Join(store.Close(e.Durable), store.Close(e.Session))
	_ = e.Logger.Sync()
	return err
}
