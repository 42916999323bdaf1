package commands

import (
	"context"
	"errors"

	"cafeteria/internal/core/domain/model/product"
)

// UpdateProductCommandHandler applies partial updates to catalog products.
// Price changes never touch existing orders because lines keep their own
// unit price.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated product or *errs.ObjectNotFoundError.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = applyProductChanges(p, cmd.Changes()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func applyProductChanges(p *product.Product, changes ProductChanges) error {
	var errList []error
	if changes.Name != nil {
		errList = append(errList, p.ChangeName(*changes.Name))
	}
	if changes.Description != nil {
		p.ChangeDescription(*changes.Description)
	}
	if changes.Price != nil {
		errList = append(errList, p.ChangePrice(*changes.Price))
	}
	if changes.Category != nil {
		errList = append(errList, p.ChangeCategory(*changes.Category))
	}
	if changes.Image != nil {
		p.ChangeImage(*changes.Image)
	}
	if changes.Available != nil {
		p.SetAvailability(*changes.Available)
	}
	return errors.Join(errList...)
}
