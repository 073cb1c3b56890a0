package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrmeyers92/client-portals/internal/logger"

	"github.com/go-redis/redis/v8"
)

const repairGroup = "identity-repair"

// streamClient is the subset of the Redis client used by the repair queue and worker
type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// RedisRepairQueue appends repairs to a Redis stream
type RedisRepairQueue struct {
	client streamClient
	stream string
}

// NewRedisRepairQueue creates a queue writing to the given stream
func NewRedisRepairQueue(client *redis.Client, stream string) *RedisRepairQueue {
	return &RedisRepairQueue{client: client, stream: stream}
}

// Enqueue publishes the repair as a JSON payload
func (q *RedisRepairQueue) Enqueue(ctx context.Context, repair Repair) error {
	if repair.EnqueuedAt.IsZero() {
		repair.EnqueuedAt = time.Now().UTC()
	}
	data, err := json.Marshal(repair)
	if err != nil {
		return fmt.Errorf("marshal repair: %w", err)
	}

	id, err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": repair.EnqueuedAt.Unix(),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", q.stream, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"stream":    q.stream,
		"entry_id":  id,
		"principal": repair.PrincipalID,
	}).Info("identity repair enqueued")
	return nil
}

// RepairWorker replays queued repairs against the directory until they succeed
type RepairWorker struct {
	client    streamClient
	directory Directory
	stream    string
	consumer  string
	interval  time.Duration
	batch     int64
}

// NewRepairWorker creates a worker consuming the stream as the given consumer
func NewRepairWorker(client *redis.Client, directory Directory, stream, consumer string, interval time.Duration) *RepairWorker {
	return newRepairWorker(client, directory, stream, consumer, interval)
}

func newRepairWorker(client streamClient, directory Directory, stream, consumer string, interval time.Duration) *RepairWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RepairWorker{
		client:    client,
		directory: directory,
		stream:    stream,
		consumer:  consumer,
		interval:  interval,
		batch:     50,
	}
}

// Run processes the stream on every tick until ctx is cancelled
func (w *RepairWorker) Run(ctx context.Context) error {
	log := logger.WithContext(ctx).WithField("stream", w.stream)
	if err := w.ensureGroup(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info("identity repair worker started")
	for {
		if n, err := w.ProcessOnce(ctx); err != nil {
			log.WithError(err).Warn("identity repair pass failed")
		} else if n > 0 {
			log.WithField("repaired", n).Info("identity repair pass finished")
		}

		select {
		case <-ctx.Done():
			log.Info("identity repair worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessOnce retries this consumer's pending entries, then reads new ones.
// Entries are acknowledged only after the directory accepts them.
func (w *RepairWorker) ProcessOnce(ctx context.Context) (int, error) {
	repaired := 0
	for _, start := range []string{"0", ">"} {
		n, err := w.process(ctx, start)
		repaired += n
		if err != nil {
			return repaired, err
		}
	}
	return repaired, nil
}

func (w *RepairWorker) process(ctx context.Context, start string) (int, error) {
	streams, err := w.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    repairGroup,
		Consumer: w.consumer,
		Streams:  []string{w.stream, start},
		Count:    w.batch,
		Block:    -1,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("xreadgroup %s: %w", w.stream, err)
	}

	repaired := 0
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			if w.apply(ctx, msg) {
				repaired++
			}
		}
	}
	return repaired, nil
}

// apply replays one entry and acknowledges it when done or unparseable
func (w *RepairWorker) apply(ctx context.Context, msg redis.XMessage) bool {
	log := logger.WithContext(ctx).WithField("entry_id", msg.ID)

	raw, _ := msg.Values["data"].(string)
	var repair Repair
	if err := json.Unmarshal([]byte(raw), &repair); err != nil || repair.PrincipalID == "" {
		log.WithField("payload", raw).Error("dropping malformed identity repair")
		w.ack(ctx, msg.ID)
		return false
	}

	log = log.WithField("principal", repair.PrincipalID)
	if err := w.directory.SetMetadata(ctx, repair.PrincipalID, repair.Metadata); err != nil {
		log.WithError(err).Warn("identity repair still failing")
		return false
	}

	w.ack(ctx, msg.ID)
	log.Info("identity metadata repaired")
	return true
}

func (w *RepairWorker) ack(ctx context.Context, id string) {
	if err := w.client.XAck(ctx, w.stream, repairGroup, id).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("entry_id", id).Error("failed to ack identity repair")
	}
}

func (w *RepairWorker) ensureGroup(ctx context.Context) error {
	err := w.client.XGroupCreateMkStream(ctx, w.stream, repairGroup, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group: %w", err)
	}
	return nil
}
