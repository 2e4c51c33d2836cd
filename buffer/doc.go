// Package buffer implements the pure document model for lite.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
