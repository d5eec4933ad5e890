package repository_test

import (
	"context"
	"errors"
	"testing"

	mongoadapter "github.com/rafaelleal24/products-api/internal/adapters/mongo"
	"github.com/rafaelleal24/products-api/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
)

func TestProductOptionRepository(t *testing.T) {
	db := freshDatabase(t, "test_product_options")
	products := repository.NewProductRepository(db)
	repo := repository.NewProductOptionRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, products, "Pen")
	other := createTestProduct(t, products, "Pencil")

	red := domain.NewProductOption(product.ID, "Red", "")
	blue := domain.NewProductOption(product.ID, "Blue", "")
	green := domain.NewProductOption(other.ID, "Green", "")
	for _, option := range []*domain.ProductOption{red, blue, green} {
		if err := repo.Create(ctx, option); err != nil {
			t.Fatalf("setup: create option failed: %v", err)
		}
	}

	t.Run("get requires matching product", func(t *testing.T) {
		if _, err := repo.GetByID(ctx, product.ID, red.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := repo.GetByID(ctx, other.ID, red.ID); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("lists options of one product", func(t *testing.T) {
		options, err := repo.GetByProductID(ctx, product.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(options) != 2 {
			t.Fatalf("expected 2 options, got %d", len(options))
		}
	})

	t.Run("update", func(t *testing.T) {
		red.Description = "Bright"
		if err := repo.Update(ctx, red); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		found, _ := repo.GetByID(ctx, product.ID, red.ID)
		if found == nil || found.Description != "Bright" {
			t.Fatalf("expected updated description, got %+v", found)
		}
	})

	t.Run("delete by product keeps other products", func(t *testing.T) {
		if err := repo.DeleteByProductID(ctx, product.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		options, _ := repo.GetByProductID(ctx, product.ID)
		if len(options) != 0 {
			t.Fatalf("expected no options, got %d", len(options))
		}
		if err := repo.Delete(ctx, green.ID); err != nil {
			t.Fatalf("expected other product's option to remain, got %v", err)
		}
	})
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := freshDatabase(t, "test_transactions")
	products := repository.NewProductRepository(db)
	txManager := mongoadapter.NewTransactionManager(testClient)
	ctx := context.Background()

	product := domain.NewProduct("Pen", "", decimal.Zero, decimal.Zero)
	boom := errors.New("boom")

	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := products.Create(txCtx, product); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := products.GetByID(ctx, product.ID); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected rolled back product, got %v", err)
	}
}
