package product

import (
	"fmt"
	"strings"

	"cafeteria/internal/pkg/errs"
)

// Category groups products on the menu.
type Category int

const (
	UnknownCategory Category = iota
	Beverage
	Food
	Dessert
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "unknown",
		Beverage:        "beverage",
		Food:            "food",
		Dessert:         "dessert",
	}
}

// Categories returns every valid category in menu order.
func Categories() []Category {
	return []Category{Beverage, Food, Dessert}
}

// ParseCategory converts "beverage", "food" or "dessert" (any case) into a Category.
func ParseCategory(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.String() == needle {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}

func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

func (c Category) Validate() error {
	if c <= UnknownCategory || c > Dessert {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}
