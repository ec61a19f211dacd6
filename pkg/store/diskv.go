package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Disk is a Storage backed by diskv: one file per key under BasePath.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// NewDisk creates a Disk rooted at basePath. The directory is created on the
// first write.
func NewDisk(basePath string) *Disk {
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 0, // other luggage processes write the same files
		}),
		basePath: basePath,
	}
}

func flatTransform(string) []string { return []string{} }

// BasePath returns the root directory.
func (p *Disk) BasePath() string {
	return p.basePath
}

// Get implements Storage.
func (p *Disk) Get(_ context.Context, key string) (string, bool, error) {
	if !p.d.Has(key) {
		return "", false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

// Set implements Storage.
func (p *Disk) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.d.WriteString(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Remove implements Storage.
func (p *Disk) Remove(_ context.Context, key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}
