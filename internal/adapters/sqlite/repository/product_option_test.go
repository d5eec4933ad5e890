package repository_test

import (
	"context"
	"testing"

	"github.com/rafaelleal24/products-api/internal/adapters/sqlite/repository"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
)

func TestProductOptionRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductOptionRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Pen")
	other := createTestProduct(t, db, "Pencil")
	option := createTestOption(t, db, product.ID, "Red")

	t.Run("matches product and option", func(t *testing.T) {
		found, err := repo.GetByID(ctx, product.ID, option.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != option.ID || found.ProductID != product.ID || found.Name != "Red" {
			t.Fatalf("unexpected option %+v", found)
		}
	})

	t.Run("option of another product", func(t *testing.T) {
		_, err := repo.GetByID(ctx, other.ID, option.ID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductOptionRepository_Create_MissingParent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductOptionRepository(db)
	ctx := context.Background()

	option := domain.NewProductOption("no-such-product", "Red", "")

	err := repo.Create(ctx, option)
	if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}

	options, err := repo.GetByProductID(ctx, "no-such-product")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(options) != 0 {
		t.Fatalf("expected no rows, got %d", len(options))
	}
}

func TestProductOptionRepository_GetByProductID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductOptionRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Pen")
	other := createTestProduct(t, db, "Pencil")
	createTestOption(t, db, product.ID, "Red")
	createTestOption(t, db, product.ID, "Blue")
	createTestOption(t, db, other.ID, "Green")

	options, err := repo.GetByProductID(ctx, product.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	for _, option := range options {
		if option.ProductID != product.ID {
			t.Fatalf("unexpected product id %s", option.ProductID)
		}
	}
}

func TestProductOptionRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductOptionRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Pen")
	option := createTestOption(t, db, product.ID, "Red")

	option.Name = "Crimson"
	option.Description = "Darker red"
	if err := repo.Update(ctx, option); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	found, err := repo.GetByID(ctx, product.ID, option.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.Name != "Crimson" || found.Description != "Darker red" {
		t.Fatalf("unexpected fields %q / %q", found.Name, found.Description)
	}

	if err := repo.Delete(ctx, option.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.Delete(ctx, option.ID); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected KindNotFound on second delete, got %v", err)
	}
}

func TestProductOptionRepository_DeleteByProductID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductOptionRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Pen")
	other := createTestProduct(t, db, "Pencil")
	createTestOption(t, db, product.ID, "Red")
	createTestOption(t, db, product.ID, "Blue")
	kept := createTestOption(t, db, other.ID, "Green")

	if err := repo.DeleteByProductID(ctx, product.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.DeleteByProductID(ctx, product.ID); err != nil {
		t.Fatalf("expected no error when nothing is left, got %v", err)
	}

	options, _ := repo.GetByProductID(ctx, product.ID)
	if len(options) != 0 {
		t.Fatalf("expected no options, got %d", len(options))
	}
	if _, err := repo.GetByID(ctx, other.ID, kept.ID); err != nil {
		t.Fatalf("expected other product's option to remain, got %v", err)
	}
}
