package lexicon

// RhymeGroup maps a key word to words that rhyme with it. Lookups are not
// symmetric: a word listed under a key is only found through the reverse scan.
type RhymeGroup struct {
	Word   string   `yaml:"word"`
	Rhymes []string `yaml:"rhymes"`
}

// fallbackRhymes is returned when no table entry or suffix match exists.
var fallbackRhymes = []string{"day", "way", "light", "night", "heart", "part", "see", "me", "find", "mind", "new", "true"}

// builtinRhymes is scanned in declaration order.
var builtinRhymes = []RhymeGroup{
	{Word: "day", Rhymes: []string{"say", "way", "play", "stay", "may", "ray", "gray", "away", "pray", "sway"}},
	{Word: "night", Rhymes: []string{"light", "bright", "sight", "flight", "might", "white", "delight", "height"}},
	{Word: "heart", Rhymes: []string{"part", "start", "art", "apart", "chart", "dart"}},
	{Word: "love", Rhymes: []string{"above", "dove", "glove", "of"}},
	{Word: "moon", Rhymes: []string{"soon", "tune", "june", "noon", "swoon", "rune", "dune"}},
	{Word: "sky", Rhymes: []string{"high", "fly", "by", "cry", "sigh", "why", "eye", "lie", "die"}},
	{Word: "star", Rhymes: []string{"far", "are", "bar", "car", "scar", "guitar", "afar"}},
	{Word: "sea", Rhymes: []string{"free", "me", "be", "see", "tree", "thee", "key", "we", "three"}},
	{Word: "rain", Rhymes: []string{"pain", "again", "vain", "chain", "plain", "lane", "remain", "main"}},
	{Word: "fire", Rhymes: []string{"desire", "higher", "inspire", "entire", "choir", "wire"}},
	{Word: "time", Rhymes: []string{"rhyme", "climb", "chime", "prime", "sublime", "thyme"}},
	{Word: "mind", Rhymes: []string{"find", "kind", "behind", "blind", "bind", "signed"}},
	{Word: "new", Rhymes: []string{"true", "blue", "through", "you", "knew", "grew", "view", "dew", "few"}},
	{Word: "dream", Rhymes: []string{"stream", "gleam", "beam", "seem", "theme", "scream"}},
	{Word: "soul", Rhymes: []string{"whole", "goal", "role", "control", "toll", "roll", "coal"}},
	{Word: "life", Rhymes: []string{"strife", "knife", "wife", "rife"}},
	{Word: "breath", Rhymes: []string{"death"}},
	{Word: "sun", Rhymes: []string{"run", "one", "done", "fun", "begun", "won", "spun"}},
	{Word: "hope", Rhymes: []string{"rope", "scope", "slope", "cope"}},
	{Word: "grace", Rhymes: []string{"face", "place", "space", "embrace", "race", "trace"}},
	{Word: "shore", Rhymes: []string{"more", "door", "before", "floor", "pour", "soar", "core", "roar"}},
	{Word: "tear", Rhymes: []string{"fear", "near", "clear", "dear", "year", "here", "sphere", "appear"}},
	{Word: "song", Rhymes: []string{"long", "strong", "along", "belong", "wrong", "throng"}},
	{Word: "rose", Rhymes: []string{"close", "those", "flows", "grows", "knows", "goes", "snows"}},
	{Word: "dawn", Rhymes: []string{"gone", "upon", "drawn", "yawn", "lawn"}},
	{Word: "sleep", Rhymes: []string{"deep", "keep", "weep", "steep", "sweep", "creep"}},
	{Word: "wave", Rhymes: []string{"brave", "grave", "save", "gave", "cave", "crave"}},
	{Word: "gold", Rhymes: []string{"old", "bold", "hold", "told", "cold", "fold", "unfold"}},
	{Word: "flower", Rhymes: []string{"hour", "power", "tower", "shower"}},
	{Word: "kiss", Rhymes: []string{"bliss", "this", "miss", "abyss"}},
	{Word: "dance", Rhymes: []string{"chance", "glance", "trance", "romance", "advance"}},
	{Word: "flame", Rhymes: []string{"name", "same", "came", "frame", "claim", "game"}},
	{Word: "tide", Rhymes: []string{"wide", "pride", "side", "inside", "guide", "ride", "hide"}},
	{Word: "rest", Rhymes: []string{"best", "chest", "west", "quest", "nest", "blessed"}},
	{Word: "home", Rhymes: []string{"roam", "foam", "dome", "loam"}},
	{Word: "earth", Rhymes: []string{"birth", "worth", "mirth"}},
	{Word: "stone", Rhymes: []string{"alone", "known", "own", "bone", "grown", "throne", "flown"}},
	{Word: "fall", Rhymes: []string{"all", "call", "small", "wall", "hall", "tall"}},
}
