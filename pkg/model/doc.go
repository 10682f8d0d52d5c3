// Package model defines the values that flow through the decode pipeline:
// puzzle segments extracted from the raw text, the constraint records decoded
// from their bracketed metadata, and the per-segment match results handed to
// renderers. The structured Error type shared by every stage also lives here so
// the orchestrator can classify failures without importing each stage.
package model
