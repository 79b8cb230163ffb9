// Package buffer implements the grapheme-accurate line model behind both
// rextest input fields.
//
// Coordinates are 0-based (Row, Col), with Col counted in grapheme clusters so
// a cursor never lands inside a multi-rune character.
package buffer
