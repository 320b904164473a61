// Package processor drives the song pipeline: lyrics analysis, per-line
// audio synthesis and Anki package export. It glues the cli flags to
// the analysis, orchestrator and anki packages.
package processor
