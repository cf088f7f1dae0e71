// Package orders implements order management for the seller back office.
//
// Orders are taken during a live stream and enter the system PENDING. This
// package owns creation and listing; it never touches the payment fields
// (status, deposited amount, depositor name) after creation; those belong
// exclusively to the reconcile feature.
//
// Listing order is creation sequence and deliberately stable, because the
// reconciliation pass uses it as tie-break priority.
//
// # Components
//
//   - Service: order CRUD and CSV export.
//   - Handler: HTTP endpoints.
//   - Feature: registers the package with the application loader.
//
// # HTTP Endpoints
//
//   - GET  /orders          : list the seller's orders
//   - POST /orders          : create a PENDING order
//   - GET  /orders/:id      : single order
//   - GET  /orders/export   : CSV export
package orders
