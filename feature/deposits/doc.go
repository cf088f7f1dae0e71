// Package deposits manages the pool of incoming bank-transfer records.
//
// Deposits enter the pool two ways:
//  1. Manual entry: the seller types the depositor name and amount.
//  2. Recognition: an evidence artifact (a transfer screenshot or a
//     free-text notice) is sent to the external recognition service, which
//     returns exactly one {depositor name, amount} candidate. Screenshots
//     are stored in object storage before recognition; if recognition
//     fails, no deposit is created and the orphaned evidence is removed.
//
// Deposits are consumable: the reconcile feature removes a deposit from the
// pool when it settles an order, and this package never deletes rows itself.
// Listing order is arrival order, which the reconciliation pass relies on.
//
// # HTTP Endpoints
//
//   - GET  /deposits            : list the pool
//   - POST /deposits            : manual entry
//   - POST /deposits/recognize  : evidence upload (image or text)
//   - GET  /deposits/export     : CSV export
package deposits
