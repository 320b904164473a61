// Package orchestrator sequences per-line audio synthesis over a
// lyrics analysis, tolerating partial failure.
package orchestrator
