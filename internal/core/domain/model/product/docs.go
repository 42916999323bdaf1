// Package product provides the Product aggregate: an item of the cafeteria
// menu with its price, category and availability.
//
// Products are created and edited by administrators. Orders copy the price
// of a product into their lines, so editing a product never changes existing
// orders.
package product
