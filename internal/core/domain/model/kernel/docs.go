// Package kernel provides the value objects shared by every aggregate of the
// cafeteria domain.
//
// The package includes:
//   - UUID: identifier of orders and order lines
//   - Money: a non-negative amount with at most two fractional digits
//
// Both are immutable and must be created through their constructors; the zero
// value fails Validate.
package kernel
