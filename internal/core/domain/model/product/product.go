package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"
)

// MaxNameLength is the maximum number of characters of a product name.
const MaxNameLength = 100

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an item of the menu. Its id is assigned by storage, so a product
// built by NewProduct has ID() == 0 until it is persisted.
type Product struct {
	id          int64
	name        string
	description string
	price       kernel.Money
	category    Category
	image       string
	available   bool
	createdAt   time.Time

	isConstructed bool
}

// NewProduct validates and creates a product that is not yet persisted.
//
// Returns a joined error when the name is blank or too long, the price is not
// constructed, or the category is invalid.
func NewProduct(
	name string,
	description string,
	price kernel.Money,
	category Category,
	image string,
	available bool,
	now time.Time,
) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		image:         strings.TrimSpace(image),
		available:     available,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.ChangeName(name),
		p.ChangePrice(price),
		p.ChangeCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(
	id int64,
	name string,
	description string,
	price kernel.Money,
	category Category,
	image string,
	available bool,
	createdAt time.Time,
) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("product_id", fmt.Errorf("%d is not greater than 0", id))
	}
	p, err := NewProduct(name, description, price, category, image, available, createdAt)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Category() Category {
	return p.category
}

func (p *Product) Image() string {
	return p.image
}

// IsAvailable reports whether the product can be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ChangeName sets a trimmed name of 1..MaxNameLength characters.
func (p *Product) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) ChangeDescription(description string) {
	p.description = strings.TrimSpace(description)
}

// ChangePrice affects future orders only.
func (p *Product) ChangePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) ChangeCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) ChangeImage(image string) {
	p.image = strings.TrimSpace(image)
}

// SetAvailability puts the product on or off the menu.
func (p *Product) SetAvailability(available bool) {
	p.available = available
}
