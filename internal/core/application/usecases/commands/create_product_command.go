package commands

import (
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds an item to the menu.
type CreateProductCommand struct {
	name        string
	description string
	price       kernel.Money
	category    product.Category
	image       string
	available   bool

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	name string,
	description string,
	price kernel.Money,
	category product.Category,
	image string,
	available bool,
) (CreateProductCommand, error) {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if err := price.Validate(); err != nil {
		errList = append(errList, fmt.Errorf("price: %w", err))
	}
	errList = append(errList, category.Validate())
	if err := errors.Join(errList...); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:        name,
		description: description,
		price:       price,
		category:    category,
		image:       image,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

func (c CreateProductCommand) Category() product.Category {
	return c.category
}

func (c CreateProductCommand) Image() string {
	return c.image
}

func (c CreateProductCommand) Available() bool {
	return c.available
}
