// Package analysis defines the lyrics analysis schema and the client
// for the remote analysis capability that produces it.
package analysis
