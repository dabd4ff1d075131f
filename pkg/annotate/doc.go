// Package annotate turns raw text into subject/relation/object triples.
//
// An [Annotator] splits text into sentences and extracts zero or more
// [triple.Triple] values from each. Labels use the compound "word-index"
// form, where index is the 1-based token position within the sentence, so
// that two occurrences of the same word in one sentence stay distinct while
// the display form ("word") is recovered with [triple.Label.Display].
//
// # Implementations
//
//   - rules: offline, lexicon-driven extraction for simple declarative sentences
//   - tsv: reads pre-extracted triples, one tab-separated triple per line
//   - openai: asks a chat model for structured output
//
// [SplitSentences] and [Tokenize] are shared by the implementations that work
// on prose.
//
// [triple.Triple]: github.com/matzehuels/wordweb/pkg/triple.Triple
// [triple.Label.Display]: github.com/matzehuels/wordweb/pkg/triple.Label.Display
package annotate
