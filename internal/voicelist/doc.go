// Package voicelist provides functionality for listing the voices a
// speech provider offers for a language. It helps users discover which
// voice the synthesizer will pick for their lyrics.
package voicelist
