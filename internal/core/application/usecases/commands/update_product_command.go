package commands

import (
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// ProductChanges lists the fields of a partial product update. Nil fields
// are left unchanged.
type ProductChanges struct {
	Name        *string
	Description *string
	Price       *kernel.Money
	Category    *product.Category
	Image       *string
	Available   *bool
}

// IsEmpty reports whether no field is set.
func (c ProductChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Price == nil &&
		c.Category == nil && c.Image == nil && c.Available == nil
}

// UpdateProductCommand edits some fields of a product, including its
// availability.
type UpdateProductCommand struct {
	productID int64
	changes   ProductChanges

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand rejects an update without fields.
func NewUpdateProductCommand(productID int64, changes ProductChanges) (UpdateProductCommand, error) {
	var errList []error
	if productID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"product_id", fmt.Errorf("%d is not greater than 0", productID)))
	}
	if changes.IsEmpty() {
		errList = append(errList, errs.NewValueIsRequiredError("at least one field"))
	}
	if changes.Price != nil {
		if err := changes.Price.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("price: %w", err))
		}
	}
	if changes.Category != nil {
		errList = append(errList, changes.Category.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		changes:   changes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewSetAvailabilityCommand puts a product on or off the menu.
func NewSetAvailabilityCommand(productID int64, available bool) (UpdateProductCommand, error) {
	return NewUpdateProductCommand(productID, ProductChanges{Available: &available})
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Changes() ProductChanges {
	return c.changes
}
