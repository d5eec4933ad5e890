package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/adapters/sqlite"
	"github.com/rafaelleal24/products-api/internal/adapters/sqlite/repository"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database that lives until the test ends.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	db, err := sqlite.NewConnection(config.SQLiteConfig{
		Path: "file:" + name + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlite.Close(db)
	})
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string) *domain.Product {
	t.Helper()
	product := domain.NewProduct(name, "A test description", decimal.RequireFromString("29.99"), decimal.RequireFromString("4.50"))
	if err := repository.NewProductRepository(db).Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func createTestOption(t *testing.T, db *gorm.DB, productID domain.ID, name string) *domain.ProductOption {
	t.Helper()
	option := domain.NewProductOption(productID, name, "")
	if err := repository.NewProductOptionRepository(db).Create(context.Background(), option); err != nil {
		t.Fatalf("setup: create option failed: %v", err)
	}
	return option
}
