// Package snapshot copies the store's collections to a second storage so a
// bad write or a lost volume can be recovered from.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/projects/repository"
)

const timestampLayout = "20060102T150405Z"

// DefaultKeys are the collections worth backing up.
var DefaultKeys = []string{repository.ProjectsKey, repository.ContactListsKey}

// Key is where the copy of key taken at t is written.
func Key(key string, t time.Time) string {
	return path.Join("snapshots", key, t.UTC().Format(timestampLayout)+".json")
}

// Snapshot copies each key from src to dst and returns the keys written.
// Keys missing from src are skipped.
func Snapshot(ctx context.Context, src, dst kv.Storage, keys []string, now time.Time) ([]string, error) {
	var written []string
	for _, key := range keys {
		value, err := src.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			continue
		}
		if err != nil {
			return written, fmt.Errorf("read %s: %w", key, err)
		}

		target := Key(key, now)
		if err := dst.Set(ctx, target, value); err != nil {
			return written, fmt.Errorf("write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}

// Runner takes snapshots with a fixed source, target and key set.
type Runner struct {
	src, dst kv.Storage
	keys     []string
	log      *zap.Logger
	now      func() time.Time
}

func NewRunner(src, dst kv.Storage, keys []string, log *zap.Logger) *Runner {
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{src: src, dst: dst, keys: keys, log: log, now: time.Now}
}

// Run takes one snapshot and logs the outcome.
func (r *Runner) Run(ctx context.Context) ([]string, error) {
	written, err := Snapshot(ctx, r.src, r.dst, r.keys, r.now())
	if err != nil {
		r.log.Error("snapshot failed", zap.Strings("written", written), zap.Error(err))
		return written, err
	}
	r.log.Info("snapshot completed", zap.Strings("written", written))
	return written, nil
}
