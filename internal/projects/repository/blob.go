package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
)

// ErrCorruptCollection is returned by writes when the stored value is not a
// JSON array; rewriting it would lose whatever it holds.
var ErrCorruptCollection = errors.New("stored collection is not a JSON array")

// record is one array element. raw holds the stored bytes and is cleared
// when item changes; ok is false for elements that did not decode.
type record[T any] struct {
	raw  json.RawMessage
	item T
	ok   bool
}

// collection is a stored JSON array decoded element by element.
type collection[T any] struct {
	key     string
	records []record[T]
	corrupt bool
}

// loadCollection reads the array under key. A missing key is an empty
// collection. Elements that fail to decode are skipped by items() but kept
// verbatim on save; only storage failures are returned.
func loadCollection[T any](ctx context.Context, store kv.Storage, log *zap.Logger, key string) (*collection[T], error) {
	c := &collection[T]{key: key}

	raw, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		log.Warn("discarding undecodable collection", zap.String("key", key), zap.Error(err))
		c.corrupt = true
		return c, nil
	}

	c.records = make([]record[T], 0, len(elems))
	for i, el := range elems {
		var item T
		if err := json.Unmarshal(el, &item); err != nil {
			log.Warn("skipping undecodable record",
				zap.String("key", key), zap.Int("index", i), zap.Error(err))
			c.records = append(c.records, record[T]{raw: el})
			continue
		}
		c.records = append(c.records, record[T]{raw: el, item: item, ok: true})
	}
	return c, nil
}

// items returns the decoded elements in stored order.
func (c *collection[T]) items() []T {
	out := make([]T, 0, len(c.records))
	for _, r := range c.records {
		if r.ok {
			out = append(out, r.item)
		}
	}
	return out
}

// index returns the position of the first decoded element matching, or -1.
func (c *collection[T]) index(match func(T) bool) int {
	for i, r := range c.records {
		if r.ok && match(r.item) {
			return i
		}
	}
	return -1
}

func (c *collection[T]) replace(i int, item T) {
	c.records[i] = record[T]{item: item, ok: true}
}

func (c *collection[T]) prepend(item T) {
	c.records = append([]record[T]{{item: item, ok: true}}, c.records...)
}

func (c *collection[T]) remove(i int) {
	c.records = append(c.records[:i], c.records[i+1:]...)
}

// save rewrites the array. Untouched elements keep their stored bytes.
func (c *collection[T]) save(ctx context.Context, store kv.Storage) error {
	if c.corrupt {
		return fmt.Errorf("store %s: %w", c.key, ErrCorruptCollection)
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range c.records {
		if i > 0 {
			buf.WriteByte(',')
		}
		if r.raw != nil {
			buf.Write(r.raw)
			continue
		}
		b, err := json.Marshal(r.item)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.key, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')

	if err := store.Set(ctx, c.key, buf.Bytes()); err != nil {
		return fmt.Errorf("store %s: %w", c.key, err)
	}
	return nil
}
