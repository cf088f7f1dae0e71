// Package products manages the seller's product catalog. Order items
// reference catalog entries by ID; the catalog itself plays no part in
// matching deposits.
package products
