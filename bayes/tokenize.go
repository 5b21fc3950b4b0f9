package bayes

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// NegationPrefix marks tokens that follow a negator in the same clause, so
// "we do not track" and "we track" produce different features.
const NegationPrefix = "not_"

var (
	clauseBoundary = regexp.MustCompile(`[.,;:!?]+`)
	wordPattern    = regexp.MustCompile(`[\p{L}\p{N}']+`)
)

var negators = map[string]bool{
	"not":    true,
	"no":     true,
	"never":  true,
	"nor":    true,
	"cannot": true,
}

// stopWords are function words that carry no signal about data practices.
var stopWords = map[string]bool{
	"a": true, "about": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true, "be": true,
	"been": true, "being": true, "but": true, "by": true, "can": true, "could": true,
	"did": true, "do": true, "does": true, "doing": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "having": true, "he": true, "her": true,
	"here": true, "hers": true, "him": true, "his": true, "how": true, "i": true,
	"if": true, "in": true, "into": true, "is": true, "it": true, "its": true,
	"me": true, "my": true, "of": true, "on": true, "or": true, "our": true,
	"ours": true, "she": true, "so": true, "some": true, "than": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "to": true, "too": true,
	"up": true, "us": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "will": true, "with": true, "would": true, "you": true,
	"your": true, "yours": true,
}

// Tokenize splits text into lowercase bag-of-words features.
//
// Words are runs of letters, digits and apostrophes. Tokens shorter than two
// runes and stop words are dropped. A negator ("not", "never", "don't", ...)
// prefixes every following token in its clause with NegationPrefix; clauses
// end at . , ; : ! or ?.
func Tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))

	tokens := make([]string, 0)
	for _, clause := range clauseBoundary.Split(text, -1) {
		negated := false
		for _, w := range wordPattern.FindAllString(clause, -1) {
			w = strings.Trim(w, "'")
			if isNegator(w) {
				negated = true
				continue
			}
			if utf8.RuneCountInString(w) < 2 || stopWords[w] {
				continue
			}
			if negated {
				w = NegationPrefix + w
			}
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func isNegator(w string) bool {
	return negators[w] || strings.HasSuffix(w, "n't")
}
