/*
Package templating fills line templates such as "The {adj} {noun} will {verb}"
from a thematic vocabulary.

Slots are written as {noun}, {verb}, {adj}, {adv}, {prep} and {pron}. Nouns,
verbs and descriptors come from the theme selected by the lexicon; adjective
and adverb slots share the descriptor pool. Prepositions and pronouns always
come from the static part-of-speech tables.

The TemplateManager can end a line on a chosen word, which is how the verse
package makes the last two lines of a quatrain rhyme.
*/
package templating
