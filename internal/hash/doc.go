// Package hash provides the stable string hash used to derive deck IDs
// and note GUIDs. Identifiers depend only on content and seed, never on
// run order or wall-clock time.
package hash
