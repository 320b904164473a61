// Package voice resolves language codes to synthesis voices from a
// provider catalog, with session-lifetime memoization.
package voice
