package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/dto"
	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
	"github.com/rafaelleal24/products-api/internal/core/utils"
)

const defaultProductCacheTTL = 5 * time.Minute

type ProductSettings struct {
	UpdateMode domain.UpdateMode
	CacheTTL   time.Duration
}

type ProductService struct {
	productRepository port.ProductPort
	optionRepository  port.ProductOptionPort
	productCache      port.CachePort[domain.Product]
	idempotency       *IdempotencyService[domain.Product]
	events            port.EventRecorder
	txManager         port.TransactionManager
	settings          ProductSettings
}

func (s *ProductService) getCacheKey(productID domain.ID) string {
	return fmt.Sprintf("product:%s", productID)
}

// findProduct always goes to the repository; writes must not act on a cached copy.
func (s *ProductService) findProduct(ctx context.Context, productID domain.ID) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, productID)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewProductNotFoundError(string(productID))
		}
		logger.Error(ctx, "product: get failed", err, map[string]any{
			"product_id": productID,
		})
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.getCacheKey(productID))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": productID,
		})
	}
	if cached != nil {
		logger.Debug(ctx, "product found in cache", map[string]any{
			"product_id": productID,
		})
		return cached, nil
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	// SetNX so a read that raced an update never replaces the entry the
	// update wrote.
	if _, err := s.productCache.SetNX(ctx, s.getCacheKey(productID), product, s.settings.CacheTTL); err != nil {
		logger.Error(ctx, "cache: fill product failed", err, map[string]any{
			"product_id": productID,
		})
	}

	return product, nil
}

// ListProducts returns every product, or only those whose name equals name
// ignoring case when name is not empty.
func (s *ProductService) ListProducts(ctx context.Context, name string) ([]*domain.Product, error) {
	var (
		products []*domain.Product
		err      error
	)
	if name == "" {
		products, err = s.productRepository.GetAll(ctx)
	} else {
		products, err = s.productRepository.GetByName(ctx, name)
	}
	if err != nil {
		logger.Error(ctx, "product: list failed", err, map[string]any{
			"name": name,
		})
		return nil, err
	}
	return products, nil
}

func (s *ProductService) processProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.NewProduct(request.Name, request.Description, request.Price, request.DeliveryPrice)
	if err := product.Validate(); err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepository.Create(txCtx, product); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductEvent(domain.EventProductCreated, product, product.CreatedAt))
	})
	if err != nil {
		logger.Error(ctx, "transaction: create product failed", err, map[string]any{
			"product_id": product.ID,
			"name":       product.Name,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

// CreateProduct persists a new product. A non-empty idempotencyKey makes a
// retried request with the same payload return the first result.
func (s *ProductService) CreateProduct(ctx context.Context, idempotencyKey string, request *dto.CreateProductRequest) (*domain.Product, error) {
	return s.idempotency.Do(ctx, idempotencyKey, utils.HashJSON(request), func() (*domain.Product, error) {
		return s.processProduct(ctx, request)
	})
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	patch := domain.ProductPatch{
		Name:          request.Name,
		Description:   request.Description,
		Price:         request.Price,
		DeliveryPrice: request.DeliveryPrice,
	}
	if err := product.Apply(patch, s.settings.UpdateMode, time.Now()); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepository.Update(txCtx, product); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductEvent(domain.EventProductUpdated, product, product.UpdatedAt))
	})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewProductNotFoundError(string(productID))
		}
		logger.Error(ctx, "transaction: update product failed", err, map[string]any{
			"product_id": productID,
		})
		return nil, err
	}

	s.refresh(ctx, product)

	logger.Info(ctx, "Product updated", map[string]any{
		"product_id":  productID,
		"update_mode": s.settings.UpdateMode,
	})
	return product, nil
}

// DeleteProduct removes the product together with all of its options.
func (s *ProductService) DeleteProduct(ctx context.Context, productID domain.ID) error {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.optionRepository.DeleteByProductID(txCtx, productID); err != nil {
			return err
		}
		if err := s.productRepository.Delete(txCtx, productID); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductDeletedEvent(productID, time.Now().UTC()))
	})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return serviceerrors.NewProductNotFoundError(string(productID))
		}
		logger.Error(ctx, "transaction: delete product failed", err, map[string]any{
			"product_id": productID,
		})
		return err
	}

	s.evict(ctx, productID)

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": productID})
	return nil
}

// refresh writes the updated product through to the cache. When that fails
// the entry is evicted instead.
func (s *ProductService) refresh(ctx context.Context, product *domain.Product) {
	err := s.productCache.Set(ctx, s.getCacheKey(product.ID), product, s.settings.CacheTTL)
	if err == nil {
		return
	}
	logger.Error(ctx, "cache: refresh product failed", err, map[string]any{
		"product_id": product.ID,
	})
	s.evict(ctx, product.ID)
}

func (s *ProductService) evict(ctx context.Context, productID domain.ID) {
	if err := s.productCache.Del(ctx, s.getCacheKey(productID)); err != nil {
		logger.Error(ctx, "cache: evict product failed", err, map[string]any{
			"product_id": productID,
		})
	}
}

func NewProductService(
	productRepository port.ProductPort,
	optionRepository port.ProductOptionPort,
	productCache port.CachePort[domain.Product],
	idempotency *IdempotencyService[domain.Product],
	events port.EventRecorder,
	txManager port.TransactionManager,
	settings ProductSettings,
) *ProductService {
	if !settings.UpdateMode.IsValid() {
		settings.UpdateMode = domain.UpdateModeMerge
	}
	if settings.CacheTTL <= 0 {
		settings.CacheTTL = defaultProductCacheTTL
	}
	return &ProductService{
		productRepository: productRepository,
		optionRepository:  optionRepository,
		productCache:      productCache,
		idempotency:       idempotency,
		events:            events,
		txManager:         txManager,
		settings:          settings,
	}
}
