// Package lexicon holds the read-only word tables behind the thematic poem
// path: theme vocabularies, a rhyme dictionary and part-of-speech pools.
//
// The built-in tables are initialized once and never mutated. LoadFromYAML
// builds a separate Lexicon that layers extra themes and rhyme groups on top
// of them.
package lexicon
