package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mongoadapter "github.com/rafaelleal24/products-api/internal/adapters/mongo"
	"github.com/rafaelleal24/products-api/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/products-api/internal/adapters/outbox"
)

func TestOutboxRepository_RelayCycle(t *testing.T) {
	repo := repository.NewOutboxRepository(freshDatabase(t, "test_outbox_relay"))
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	pending, err := repo.FetchPending(ctx, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected empty outbox, got %d entries", len(pending))
	}

	// Inserted out of order on purpose.
	inserts := []struct {
		name   string
		offset time.Duration
	}{
		{"product.deleted", 2 * time.Second},
		{"product.created", 0},
		{"product_option.created", time.Second},
	}
	for _, in := range inserts {
		err := repo.Insert(ctx, outbox.Entry{
			EventName:  in.name,
			EntityName: "product",
			EventData:  []byte(`{"id":"p-1"}`),
			CreatedAt:  base.Add(in.offset),
		})
		if err != nil {
			t.Fatalf("insert %s failed: %v", in.name, err)
		}
	}

	t.Run("oldest first within the limit", func(t *testing.T) {
		entries, err := repo.FetchPending(ctx, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].EventName != "product.created" || entries[1].EventName != "product_option.created" {
			t.Fatalf("unexpected order: %s, %s", entries[0].EventName, entries[1].EventName)
		}
		if entries[0].ID == "" || !entries[0].CreatedAt.Equal(base) || string(entries[0].EventData) != `{"id":"p-1"}` {
			t.Fatalf("unexpected entry %+v", entries[0])
		}
	})

	t.Run("delete removes published entries", func(t *testing.T) {
		entries, _ := repo.FetchPending(ctx, 10)
		for _, entry := range entries[:2] {
			if err := repo.Delete(ctx, entry.ID); err != nil {
				t.Fatalf("delete failed: %v", err)
			}
		}

		remaining, err := repo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(remaining) != 1 || remaining[0].EventName != "product.deleted" {
			t.Fatalf("expected only product.deleted left, got %+v", remaining)
		}
	})

	t.Run("deleting twice is a no-op", func(t *testing.T) {
		if err := repo.Delete(ctx, "already-gone"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestOutboxRepository_JoinsTransaction(t *testing.T) {
	repo := repository.NewOutboxRepository(freshDatabase(t, "test_outbox_tx"))
	txManager := mongoadapter.NewTransactionManager(testClient)
	ctx := context.Background()
	rollback := errors.New("rollback")

	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Insert(txCtx, outbox.Entry{EventName: "product.created", EntityName: "product", EventData: []byte(`{}`)}); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("expected rollback error, got %v", err)
	}

	entries, err := repo.FetchPending(ctx, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected rolled back entry to be gone, got %d", len(entries))
	}
}
