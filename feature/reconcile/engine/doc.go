// Package engine implements the deposit-to-order matching pass.
//
// Orders awaiting payment and a pool of bank-transfer records converge here:
// Run decides which deposits settle which orders, promotes matched orders to
// PAID, and returns the residual pool. The pass is a pure function over two
// in-memory sequences; persistence, seller scoping and serialization of
// concurrent passes are the caller's concern (see the parent reconcile
// package).
//
// # Matching rules
//
//   - Orders are visited in their given sequence; that sequence is the
//     tie-break priority.
//   - An open order (PENDING or UNDERPAID) matches the first deposit in pool
//     order whose depositor name equals the customer name exactly and whose
//     amount is at least the order total.
//   - A match consumes the deposit: it settles exactly one order and is
//     removed from the pool. Overpay is accepted and recorded in full.
//   - A deposit short of the total is never a match, not even partially.
//   - PAID orders and already-consumed deposits are never revisited, so
//     re-running the pass on its own output produces no new matches.
package engine
