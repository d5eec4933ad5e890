package service

import (
	"context"
	"time"

	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/dto"
	"github.com/rafaelleal24/products-api/internal/core/logger"
	"github.com/rafaelleal24/products-api/internal/core/port"
	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
	"github.com/rafaelleal24/products-api/internal/core/utils"
)

type ProductOptionService struct {
	optionRepository port.ProductOptionPort
	productService   *ProductService
	idempotency      *IdempotencyService[domain.ProductOption]
	events           port.EventRecorder
	txManager        port.TransactionManager
	updateMode       domain.UpdateMode
}

// optionRequest is what gets hashed for idempotent creates, so that reusing a
// key on another product counts as a different payload.
type optionRequest struct {
	ProductID domain.ID                       `json:"product_id"`
	Request   *dto.CreateProductOptionRequest `json:"request"`
}

func (s *ProductOptionService) findOption(ctx context.Context, productID, optionID domain.ID) (*domain.ProductOption, error) {
	option, err := s.optionRepository.GetByID(ctx, productID, optionID)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewProductOptionNotFoundError(string(productID), string(optionID))
		}
		logger.Error(ctx, "product option: get failed", err, map[string]any{
			"product_id": productID,
			"option_id":  optionID,
		})
		return nil, err
	}
	return option, nil
}

func (s *ProductOptionService) GetOption(ctx context.Context, productID, optionID domain.ID) (*domain.ProductOption, error) {
	return s.findOption(ctx, productID, optionID)
}

func (s *ProductOptionService) ListOptions(ctx context.Context, productID domain.ID) ([]*domain.ProductOption, error) {
	if _, err := s.productService.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	options, err := s.optionRepository.GetByProductID(ctx, productID)
	if err != nil {
		logger.Error(ctx, "product option: list failed", err, map[string]any{
			"product_id": productID,
		})
		return nil, err
	}
	return options, nil
}

func (s *ProductOptionService) processOption(ctx context.Context, productID domain.ID, request *dto.CreateProductOptionRequest) (*domain.ProductOption, error) {
	if _, err := s.productService.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	option := domain.NewProductOption(productID, request.Name, request.Description)
	if err := option.Validate(); err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.optionRepository.Create(txCtx, option); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductOptionEvent(domain.EventProductOptionCreated, option, option.CreatedAt))
	})
	if err != nil {
		// the parent can disappear between the check and the insert
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewProductNotFoundError(string(productID))
		}
		logger.Error(ctx, "transaction: create product option failed", err, map[string]any{
			"product_id": productID,
			"option_id":  option.ID,
		})
		return nil, err
	}

	logger.Info(ctx, "Product option created", map[string]any{
		"product_id": productID,
		"option_id":  option.ID,
	})
	return option, nil
}

func (s *ProductOptionService) CreateOption(ctx context.Context, productID domain.ID, idempotencyKey string, request *dto.CreateProductOptionRequest) (*domain.ProductOption, error) {
	payloadHash := utils.HashJSON(optionRequest{ProductID: productID, Request: request})
	return s.idempotency.Do(ctx, idempotencyKey, payloadHash, func() (*domain.ProductOption, error) {
		return s.processOption(ctx, productID, request)
	})
}

func (s *ProductOptionService) UpdateOption(ctx context.Context, productID, optionID domain.ID, request *dto.UpdateProductOptionRequest) (*domain.ProductOption, error) {
	option, err := s.findOption(ctx, productID, optionID)
	if err != nil {
		return nil, err
	}

	patch := domain.ProductOptionPatch{
		Name:        request.Name,
		Description: request.Description,
	}
	if err := option.Apply(patch, s.updateMode, time.Now()); err != nil {
		return nil, err
	}
	if err := option.Validate(); err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.optionRepository.Update(txCtx, option); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductOptionEvent(domain.EventProductOptionUpdated, option, option.UpdatedAt))
	})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewProductOptionNotFoundError(string(productID), string(optionID))
		}
		logger.Error(ctx, "transaction: update product option failed", err, map[string]any{
			"product_id": productID,
			"option_id":  optionID,
		})
		return nil, err
	}

	logger.Info(ctx, "Product option updated", map[string]any{
		"product_id": productID,
		"option_id":  optionID,
	})
	return option, nil
}

func (s *ProductOptionService) DeleteOption(ctx context.Context, productID, optionID domain.ID) error {
	option, err := s.findOption(ctx, productID, optionID)
	if err != nil {
		return err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.optionRepository.Delete(txCtx, option.ID); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductOptionEvent(domain.EventProductOptionDeleted, option, time.Now().UTC()))
	})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return serviceerrors.NewProductOptionNotFoundError(string(productID), string(optionID))
		}
		logger.Error(ctx, "transaction: delete product option failed", err, map[string]any{
			"product_id": productID,
			"option_id":  optionID,
		})
		return err
	}

	logger.Info(ctx, "Product option deleted", map[string]any{
		"product_id": productID,
		"option_id":  optionID,
	})
	return nil
}

func NewProductOptionService(
	optionRepository port.ProductOptionPort,
	productService *ProductService,
	idempotency *IdempotencyService[domain.ProductOption],
	events port.EventRecorder,
	txManager port.TransactionManager,
	updateMode domain.UpdateMode,
) *ProductOptionService {
	if !updateMode.IsValid() {
		updateMode = domain.UpdateModeMerge
	}
	return &ProductOptionService{
		optionRepository: optionRepository,
		productService:   productService,
		idempotency:      idempotency,
		events:           events,
		txManager:        txManager,
		updateMode:       updateMode,
	}
}
