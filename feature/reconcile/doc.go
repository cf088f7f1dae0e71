// Package reconcile matches the seller's deposit pool against open orders.
//
// The matching rules live in the engine subpackage as a pure function; this
// package loads the seller's data, runs a pass and commits the outcome in a
// single transaction: matched orders become PAID, consumed deposits leave
// the pool and a run record is kept for audit. A preview variant computes
// the same pass without committing.
//
// Passes for the same seller are serialized in-process, so two concurrent
// run requests cannot consume the same deposit twice.
package reconcile
