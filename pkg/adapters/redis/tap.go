package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/schema"
)

// Tap implements ports.OutputTap using Redis. Each recorded tick is
// mirrored as a hash of schema.Output JSON documents, one field per
// node, plus a plain tick counter key:
//
//	HSET <prefix>outputs <node-id> <json>
//	SET  <prefix>tick    <tick>
//
// The mirror is write-only diagnostics. The engine never reads it back.
type Tap struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Tap)

// WithTTL sets the expiration for mirrored keys.
func WithTTL(ttl time.Duration) Option {
	return func(t *Tap) {
		t.ttl = ttl
	}
}

// WithPrefix sets the key prefix for mirrored keys.
func WithPrefix(prefix string) Option {
	return func(t *Tap) {
		t.prefix = prefix
	}
}

// New creates a new Redis tap with options.
func New(address, password string, db int, opts ...Option) *Tap {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis tap from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Tap {
	tap := &Tap{
		client: client,
		prefix: "pipegraph:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(tap)
	}

	return tap
}

func (t *Tap) outputsKey() string {
	return t.prefix + "outputs"
}

func (t *Tap) tickKey() string {
	return t.prefix + "tick"
}

// Record mirrors one committed tick to Redis. Frame pixel bytes are not
// mirrored; image outputs carry their FrameMeta only.
func (t *Tap) Record(ctx context.Context, tick uint64, outputs []domain.Signal) error {
	fields := make(map[string]string, len(outputs))
	for id, out := range schema.Snapshot(tick, nil, outputs) {
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal output %d: %w", id, err)
		}
		fields[strconv.Itoa(id)] = string(data)
	}

	pipe := t.client.Pipeline()

	// 1. Mirror the outputs, one hash field per node.
	if len(fields) > 0 {
		pipe.HSet(ctx, t.outputsKey(), fields)
	}

	// 2. Advance the tick counter.
	// Use 0 for no expiration if ttl is not set.
	pipe.Set(ctx, t.tickKey(), tick, t.ttl)
	if t.ttl > 0 {
		pipe.Expire(ctx, t.outputsKey(), t.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mirror tick to redis: %w", err)
	}

	return nil
}

// Close closes the redis client.
func (t *Tap) Close() error {
	return t.client.Close()
}
