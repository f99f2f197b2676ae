// Package runner executes reconciliation plans on a bounded worker pool.
//
// Tasks are independent: a failure aborts only its own task and the joined
// failures come back after every task has finished. Destinations are
// written through temporary siblings, so an interrupted run never leaves a
// truncated file where an output should be. Re-running a plan skips copy
// and silence destinations that already exist.
package runner
