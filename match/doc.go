// Package match turns a pattern and a subject into the text shown in the
// matches panel.
//
// A Compiler produces a Pattern; a Pattern enumerates leftmost-first,
// non-overlapping matches with their capture groups; Format renders them.
// Engine ties the three together and keeps the last good Pattern when a new
// one fails to compile.
package match
