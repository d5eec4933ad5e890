package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
)

const (
	MaxIdempotencyKeyLength = 255

	defaultIdempotencyTTL          = 15 * time.Minute
	defaultIdempotencyPollInterval = time.Second
	defaultIdempotencyPollTimeout  = 10 * time.Second
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyEntry is what gets cached under an Idempotency-Key. Result is
// only set once the first request finished.
type IdempotencyEntry[T any] struct {
	Status      IdempotencyStatus `json:"status"`
	PayloadHash string            `json:"payload_hash"`
	Result      *T                `json:"result,omitempty"`
}

// IdempotencyService makes create requests safe to retry. A key is claimed
// with SetNX; concurrent duplicates poll until the first request completes or
// releases the key.
type IdempotencyService[T any] struct {
	cache        port.CachePort[IdempotencyEntry[T]]
	ttl          time.Duration
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func NewIdempotencyService[T any](
	cache port.CachePort[IdempotencyEntry[T]],
	ttl time.Duration,
	pollInterval time.Duration,
	pollTimeout time.Duration,
) *IdempotencyService[T] {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	if pollInterval <= 0 {
		pollInterval = defaultIdempotencyPollInterval
	}
	if pollTimeout <= 0 {
		pollTimeout = defaultIdempotencyPollTimeout
	}
	return &IdempotencyService[T]{
		cache:        cache,
		ttl:          ttl,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

// Do runs process at most once per key. An empty key skips the bookkeeping.
// A failed process releases the key so the client can retry with it.
func (s *IdempotencyService[T]) Do(ctx context.Context, key, payloadHash string, process func() (*T, error)) (*T, error) {
	if key == "" {
		return process()
	}
	if len(key) > MaxIdempotencyKeyLength {
		return nil, serviceerrors.NewInvalidRequestError(
			fmt.Sprintf("Idempotency-Key must be at most %d characters", MaxIdempotencyKeyLength))
	}

	existing, err := s.Claim(ctx, key, payloadHash)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) &&
			!serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
				"idempotency_key": key,
			})
		}
		return nil, err
	}
	if existing != nil {
		logger.Info(ctx, "idempotency: replayed result", map[string]any{
			"idempotency_key": key,
		})
		return existing, nil
	}

	result, err := process()
	if err != nil {
		s.Release(ctx, key)
		return nil, err
	}

	s.Complete(ctx, key, payloadHash, result)
	return result, nil
}

// Claim returns (nil, nil) when the key is new and now owned by the caller,
// or the stored result of an earlier request with the same payload.
func (s *IdempotencyService[T]) Claim(ctx context.Context, key, payloadHash string) (*T, error) {
	claimed, err := s.cache.SetNX(ctx, key, &IdempotencyEntry[T]{
		Status:      IdempotencyProcessing,
		PayloadHash: payloadHash,
	}, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("idempotency claim failed: %w", err)
	}

	if claimed {
		return nil, nil
	}

	return s.waitForCompletion(ctx, key, payloadHash)
}

func (s *IdempotencyService[T]) Complete(ctx context.Context, key, payloadHash string, result *T) {
	err := s.cache.Set(ctx, key, &IdempotencyEntry[T]{
		Status:      IdempotencyCompleted,
		PayloadHash: payloadHash,
		Result:      result,
	}, s.ttl)
	if err != nil {
		logger.Error(ctx, "idempotency: complete failed", err, map[string]any{
			"idempotency_key": key,
			"payload_hash":    payloadHash,
		})
	}
}

func (s *IdempotencyService[T]) Release(ctx context.Context, key string) {
	if err := s.cache.Del(ctx, key); err != nil {
		logger.Error(ctx, "idempotency: release failed", err, map[string]any{
			"idempotency_key": key,
		})
	}
}

// checkEntry returns (nil, nil) while the first request is still running.
func (s *IdempotencyService[T]) checkEntry(ctx context.Context, key, payloadHash string) (*T, error) {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("idempotency check failed: %w", err)
	}
	switch {
	case entry == nil:
		return nil, serviceerrors.NewConflictError("previous request failed, retry with the same key")
	case entry.PayloadHash != payloadHash:
		return nil, serviceerrors.NewUnprocessableEntityError("idempotency key already used with a different payload")
	case entry.Status == IdempotencyCompleted:
		return entry.Result, nil
	default:
		return nil, nil
	}
}

func (s *IdempotencyService[T]) waitForCompletion(ctx context.Context, key, payloadHash string) (*T, error) {
	result, err := s.checkEntry(ctx, key, payloadHash)
	if result != nil || err != nil {
		return result, err
	}

	timeout := time.NewTimer(s.pollTimeout)
	defer timeout.Stop()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout.C:
			return nil, serviceerrors.NewConflictError("idempotency key still being processed, timed out")
		case <-ticker.C:
			result, err := s.checkEntry(ctx, key, payloadHash)
			if result != nil || err != nil {
				return result, err
			}
		}
	}
}
