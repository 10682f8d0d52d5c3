// Package orchestrator wires the loader → tokenizer → metadata decoder →
// matcher → renderer pipeline, providing dependency injection friendly helpers
// for consumers that prefer a single entry point.
package orchestrator
