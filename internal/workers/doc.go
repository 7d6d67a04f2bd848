// Package workers runs batches of credential operations off the caller's
// goroutine with bounded parallelism.
//
// Key derivation is CPU-bound, so sealing or opening many credentials at
// once is limited to a configured number of concurrent jobs. Results keep
// the order of the input.
package workers
