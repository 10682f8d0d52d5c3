// Package render defines the Renderer contract and a name-keyed Registry used
// by the orchestrator to turn decode results into output.
package render
