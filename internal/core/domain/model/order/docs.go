// Package order provides the Order aggregate of the cafeteria: an order placed
// by a user, its lines with frozen prices, and the status state machine.
//
// The package includes:
//   - Order: aggregate root holding the owner, status, total and lines
//   - Line: one product with quantity, unit price captured at order time and a note
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - An order has at least one line and every line has a quantity of at least 1
//   - The total is the sum of unit price times quantity, fixed at creation
//   - Status moves pending -> ready -> delivered, or to cancelled from any
//     non-terminal state; delivered and cancelled are terminal
//
// Who may invoke a transition is not decided here; see the services package.
package order
