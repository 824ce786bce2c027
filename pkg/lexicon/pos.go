package lexicon

import "slices"

// POS names a part-of-speech slot.
type POS string

const (
	Noun        POS = "noun"
	Verb        POS = "verb"
	Adjective   POS = "adj"
	Adverb      POS = "adv"
	Preposition POS = "prep"
	Pronoun     POS = "pron"
)

// inferenceOrder is the order in which pools are scanned by InferPOS.
var inferenceOrder = []POS{Noun, Verb, Adjective, Adverb, Pronoun, Preposition}

// posPools are the static part-of-speech tables. Preposition and pronoun
// slots always draw from here; the other pools only drive inference.
var posPools = map[POS][]string{
	Noun: {
		"day", "night", "heart", "love", "moon", "sky", "star", "sea", "rain", "fire", "time", "mind",
		"dream", "soul", "life", "breath", "death", "sun", "hope", "grace", "face", "place", "space",
		"shore", "door", "floor", "core", "tear", "year", "sphere", "song", "throng", "rose", "dawn",
		"lawn", "wave", "cave", "grave", "gold", "flower", "hour", "power", "tower", "shower", "kiss",
		"bliss", "abyss", "dance", "chance", "glance", "trance", "romance", "flame", "name", "frame",
		"game", "tide", "side", "pride", "rest", "chest", "west", "quest", "nest", "home", "foam",
		"dome", "loam", "earth", "birth", "worth", "mirth", "stone", "bone", "throne", "wall", "hall",
		"light", "sight", "flight", "height", "delight", "part", "art", "chart", "dart", "dove",
		"glove", "tune", "noon", "rune", "dune", "june", "eye", "car", "bar", "scar", "guitar", "tree",
		"key", "chain", "lane", "desire", "choir", "wire", "rhyme", "chime", "thyme", "view", "dew",
		"stream", "gleam", "beam", "theme", "goal", "role", "toll", "coal", "strife", "knife", "wife",
		"fun", "rope", "scope", "slope", "trace", "race", "yawn", "world", "way", "path", "hand",
		"ray", "bay", "play", "fear", "control", "scream", "sweep", "claim", "guide", "ride", "call",
	},
	Verb: {
		"say", "stay", "pray", "sway", "fly", "cry", "sigh", "lie", "die", "see", "be", "remain",
		"inspire", "climb", "find", "bind", "grew", "knew", "seem", "roll", "run", "begun", "won",
		"spun", "cope", "embrace", "pour", "soar", "roar", "appear", "belong", "close", "flows",
		"grows", "knows", "goes", "snows", "sleep", "keep", "weep", "creep", "save", "gave", "crave",
		"hold", "fold", "unfold", "told", "miss", "advance", "came", "hide", "roam", "own", "grown",
		"flown", "fall", "start", "signed", "done", "are",
	},
	Adjective: {
		"gray", "bright", "white", "high", "higher", "far", "free", "blue", "true", "new", "kind",
		"blind", "whole", "vain", "plain", "main", "entire", "prime", "sublime", "deep", "steep",
		"brave", "bold", "old", "cold", "wide", "clear", "dear", "near", "long", "strong", "wrong",
		"small", "tall", "alone", "known", "best", "blessed", "few", "rife", "same", "one", "three",
		"might", "all",
	},
	Adverb: {
		"away", "again", "soon", "above", "behind", "along", "before", "more", "here", "apart",
		"afar", "inside", "why", "may", "this", "those",
	},
	Pronoun: {
		"you", "me", "we", "us", "they", "them", "her", "him", "thee",
	},
	Preposition: {
		"in", "on", "at", "by", "with", "through", "beneath", "beyond", "under", "over", "across",
		"into", "upon", "toward", "within", "of",
	},
}

// Pool returns a copy of the static pool for pos.
func Pool(pos POS) []string {
	return slices.Clone(posPools[pos])
}

// InferPOS returns the first static pool, in inference order, that contains
// word. Unknown words are treated as nouns.
func InferPOS(word string) POS {
	for _, pos := range inferenceOrder {
		if slices.Contains(posPools[pos], word) {
			return pos
		}
	}
	return Noun
}
