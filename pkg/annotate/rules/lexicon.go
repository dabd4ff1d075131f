package rules

var defaultVerbs = []string{
	"ate", "eat", "eats", "drank", "drink", "drinks",
	"sat", "sit", "sits", "ran", "run", "runs", "saw", "see", "sees",
	"chased", "chases", "chase", "likes", "like", "loves", "love", "hates", "hate",
	"owns", "own", "wrote", "write", "writes", "read", "reads",
	"made", "make", "makes", "built", "build", "builds",
	"gave", "give", "gives", "took", "take", "takes",
	"found", "find", "finds", "knew", "know", "knows",
	"lives", "live", "lived", "went", "go", "goes",
	"met", "meet", "meets", "sang", "sing", "sings",
	"slept", "sleep", "sleeps", "flew", "fly", "flies",
	"contains", "contain", "includes", "include", "uses", "use",
	"became", "become", "becomes", "caught", "catch", "catches",
	"bought", "buy", "buys", "sold", "sell", "sells",
	"taught", "teach", "teaches", "studies", "study",
	"won", "win", "wins", "lost", "lose", "loses",
}

var auxiliaries = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "am": {},
	"has": {}, "have": {}, "had": {},
	"does": {}, "do": {}, "did": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "may": {}, "might": {}, "must": {}, "should": {},
}

var determiners = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"my": {}, "your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
	"some": {}, "every": {}, "each": {},
}

var prepositions = map[string]struct{}{
	"on": {}, "in": {}, "at": {}, "to": {}, "from": {}, "with": {}, "by": {},
	"of": {}, "for": {}, "into": {}, "onto": {}, "over": {}, "under": {}, "about": {},
}

func isAuxiliary(w string) bool  { _, ok := auxiliaries[w]; return ok }
func isDeterminer(w string) bool { _, ok := determiners[w]; return ok }
func isPreposition(w string) bool {
	_, ok := prepositions[w]
	return ok
}
func isNegation(w string) bool { return w == "not" || w == "never" }
