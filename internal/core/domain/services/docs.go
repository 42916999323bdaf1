// Package services provides domain services that hold rules spanning more than
// one aggregate.
//
// The package includes:
//   - OrderAccessPolicy: the single rule deciding who may view an order, list
//     orders and invoke a status transition
package services
