package lexicon

// DefaultTheme is the name of the theme returned when nothing else matches.
const DefaultTheme = "default"

// ThematicWordSet is the vocabulary associated with one theme. The template
// engine consumes Nouns, Verbs and Descriptors; Adverbs complete the set.
type ThematicWordSet struct {
	Name        string   `yaml:"name"`
	Nouns       []string `yaml:"nouns"`
	Verbs       []string `yaml:"verbs"`
	Descriptors []string `yaml:"descriptors"`
	Adverbs     []string `yaml:"adverbs"`
}

// Pools returns the four pools in their canonical order:
// nouns, verbs, descriptors, adverbs.
func (ws ThematicWordSet) Pools() [4][]string {
	return [4][]string{ws.Nouns, ws.Verbs, ws.Descriptors, ws.Adverbs}
}

// usable reports whether the three pools read by the template engine are non-empty.
func (ws ThematicWordSet) usable() bool {
	return len(ws.Nouns) > 0 && len(ws.Verbs) > 0 && len(ws.Descriptors) > 0
}

func (ws ThematicWordSet) clone() ThematicWordSet {
	return ThematicWordSet{
		Name:        ws.Name,
		Nouns:       append([]string(nil), ws.Nouns...),
		Verbs:       append([]string(nil), ws.Verbs...),
		Descriptors: append([]string(nil), ws.Descriptors...),
		Adverbs:     append([]string(nil), ws.Adverbs...),
	}
}

// builtinThemes is scanned in declaration order. The default theme must stay last.
var builtinThemes = []ThematicWordSet{
	{
		Name:        "love",
		Nouns:       []string{"heart", "passion", "embrace", "desire", "kiss", "romance", "devotion", "flame", "rose", "touch"},
		Verbs:       []string{"cherish", "hold", "adore", "kiss", "yearn", "burn", "whisper", "embrace"},
		Descriptors: []string{"tender", "sweet", "warm", "gentle", "ardent", "true", "dear", "fond"},
		Adverbs:     []string{"tenderly", "softly", "warmly", "dearly", "truly", "gently"},
	},
	{
		Name:        "nature",
		Nouns:       []string{"tree", "flower", "river", "mountain", "sky", "earth", "breeze", "sun", "moon", "star", "meadow", "leaf"},
		Verbs:       []string{"bloom", "grow", "flow", "rise", "sway", "shine", "drift", "rustle"},
		Descriptors: []string{"green", "wild", "golden", "verdant", "bright", "open", "vast", "quiet"},
		Adverbs:     []string{"freely", "wildly", "slowly", "quietly", "brightly"},
	},
	{
		Name:        "time",
		Nouns:       []string{"clock", "moment", "hour", "day", "year", "past", "future", "memory", "eternity", "season"},
		Verbs:       []string{"pass", "fade", "linger", "wait", "turn", "remember", "fly", "wane"},
		Descriptors: []string{"fleeting", "ancient", "endless", "brief", "old", "late", "slow", "distant"},
		Adverbs:     []string{"slowly", "swiftly", "forever", "always", "never", "soon"},
	},
	{
		Name:        "joy",
		Nouns:       []string{"smile", "laugh", "delight", "pleasure", "bliss", "cheer", "song", "play", "dance", "light"},
		Verbs:       []string{"laugh", "sing", "dance", "play", "leap", "shine", "smile", "celebrate"},
		Descriptors: []string{"happy", "merry", "bright", "glad", "joyful", "radiant", "light", "lively"},
		Adverbs:     []string{"gladly", "merrily", "brightly", "happily", "freely"},
	},
	{
		Name:        "sorrow",
		Nouns:       []string{"tear", "pain", "grief", "loss", "ache", "despair", "sadness", "woe", "rain", "shadow"},
		Verbs:       []string{"weep", "mourn", "cry", "ache", "grieve", "fall", "break", "sigh"},
		Descriptors: []string{"sad", "grey", "broken", "lonely", "heavy", "cold", "bitter", "pale"},
		Adverbs:     []string{"sadly", "slowly", "heavily", "bitterly", "alone"},
	},
	{
		Name:        "life",
		Nouns:       []string{"birth", "death", "journey", "path", "breath", "soul", "spirit", "road", "blood", "seed"},
		Verbs:       []string{"live", "breathe", "walk", "grow", "wander", "begin", "end", "become"},
		Descriptors: []string{"living", "mortal", "new", "fragile", "vital", "young", "whole", "free"},
		Adverbs:     []string{"boldly", "fully", "freely", "onward", "deeply"},
	},
	{
		Name:        "hope",
		Nouns:       []string{"dream", "wish", "faith", "light", "promise", "horizon", "dawn", "morning", "sky", "wing"},
		Verbs:       []string{"believe", "rise", "dream", "aspire", "soar", "wake", "reach", "hope"},
		Descriptors: []string{"bright", "hopeful", "new", "clear", "golden", "open", "high", "steady"},
		Adverbs:     []string{"bravely", "ever", "upward", "still", "again"},
	},
	{
		Name:        "wisdom",
		Nouns:       []string{"knowledge", "mind", "sage", "insight", "reason", "thought", "truth", "book", "word", "lamp"},
		Verbs:       []string{"learn", "think", "know", "seek", "ponder", "teach", "understand", "see"},
		Descriptors: []string{"wise", "deep", "patient", "clear", "silent", "ancient", "calm", "true"},
		Adverbs:     []string{"wisely", "deeply", "patiently", "calmly", "quietly"},
	},
	{
		Name:        "night",
		Nouns:       []string{"night", "moon", "star", "shadow", "dark", "dusk", "owl", "candle", "silence", "sleep"},
		Verbs:       []string{"sleep", "dream", "glow", "hush", "fall", "wander", "gleam", "rest"},
		Descriptors: []string{"dark", "silver", "silent", "starry", "deep", "still", "hushed", "pale"},
		Adverbs:     []string{"softly", "silently", "darkly", "gently", "late"},
	},
	{
		Name:        "sea",
		Nouns:       []string{"sea", "wave", "tide", "shore", "ocean", "salt", "foam", "ship", "sail", "deep"},
		Verbs:       []string{"roll", "crash", "sail", "drift", "surge", "call", "swell", "break"},
		Descriptors: []string{"blue", "restless", "endless", "salty", "wide", "stormy", "deep", "grey"},
		Adverbs:     []string{"endlessly", "restlessly", "far", "away", "ever"},
	},
	{
		Name:        DefaultTheme,
		Nouns:       []string{"time", "day", "heart", "life", "way", "world", "light", "mind", "hand", "eye", "night", "dream", "soul", "sky", "star", "flower", "path", "sea", "tree", "sun"},
		Verbs:       []string{"see", "feel", "know", "dream", "hold", "find", "walk", "shine", "sing", "wait"},
		Descriptors: []string{"bright", "soft", "still", "deep", "golden", "quiet", "gentle", "lost"},
		Adverbs:     []string{"softly", "slowly", "gently", "quietly", "always", "ever"},
	},
}
