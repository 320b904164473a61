// Package speech provides the text-to-speech providers that turn IPA
// transcriptions into pronunciation audio.
package speech
