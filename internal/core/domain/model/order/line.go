package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"
)

const (
	// MaxNoteLength is the maximum number of characters of a line note.
	MaxNoteLength = 500
	// MaxQuantity is the largest number of units a single line may carry.
	MaxQuantity = 100
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product of an order. The unit price is copied from the catalog
// when the order is created and never changes afterwards.
type Line struct {
	id        kernel.UUID
	productID int64
	quantity  int
	unitPrice kernel.Money
	note      string
	position  int

	isConstructed bool
}

// NewLine validates and creates a line. Its position is assigned by NewOrder.
//
// Returns a joined error listing every invalid argument:
//   - productID must be positive
//   - quantity must be between 1 and MaxQuantity
//   - note must not exceed MaxNoteLength characters
func NewLine(id kernel.UUID, productID int64, quantity int, unitPrice kernel.Money, note string) (*Line, error) {
	line := &Line{isConstructed: true}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setNote(note),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(
	id kernel.UUID,
	productID int64,
	quantity int,
	unitPrice kernel.Money,
	note string,
	position int,
) (*Line, error) {
	line, err := NewLine(id, productID, quantity, unitPrice, note)
	if err != nil {
		return nil, err
	}
	line.position = position
	return line, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) ProductID() int64 {
	return l.productID
}

func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *Line) Note() string {
	return l.note
}

// Position is the zero-based index of the line within its order.
func (l *Line) Position() int {
	return l.position
}

// Subtotal returns unit price times quantity.
func (l *Line) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product_id", fmt.Errorf("%d is not greater than 0", productID))
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setNote(note string) error {
	if n := utf8.RuneCountInString(note); n > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, MaxNoteLength)
	}
	l.note = note
	return nil
}
