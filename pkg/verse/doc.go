// Package verse composes quatrains. It holds the two generation paths and the
// facade that picks between them:
//
//   - the chain path builds an n-gram model from seed text and walks it once
//     per line, degrading from order 2 to order 1 to plain vocabulary sampling;
//   - the thematic path resolves a seed word to a theme, fills templates and
//     forces lines 3 and 4 to rhyme with lines 1 and 2 (ABAB).
//
// Handled failures never surface as errors. They come back as a Quatrain
// holding a single diagnostic line.
package verse
