package intent

import (
	"strings"
	"unicode/utf8"

	"mall-backend/internal/chat/keyword"
)

// Classifier decides how a user message relates to product inquiry. It is a
// pure function over the message text, the vocabulary and the current global
// keyword set; it always returns a valid Intent.
type Classifier struct {
	vocab *keyword.Vocabulary
	tok   *keyword.Tokenizer

	// known reports membership of a token in the global keyword set.
	known func(token string) bool
}

// NewClassifier creates a classifier over the given vocabulary. known tests
// whether a token has been observed as a product-relevant keyword.
func NewClassifier(vocab *keyword.Vocabulary, tok *keyword.Tokenizer, known func(string) bool) *Classifier {
	return &Classifier{
		vocab: vocab,
		tok:   tok,
		known: known,
	}
}

// Classify applies the phrase sets in fixed precedence: all-products beats
// mall-specific beats general-market; only then does the relatedness test
// run. Changing this order changes which canned prompt an ambiguous message
// receives, so it is intentional.
func (c *Classifier) Classify(text string) Intent {
	if text == "" {
		return NotProductRelated
	}

	if containsAny(text, c.vocab.AllProductsPhrases) {
		return AllProducts
	}
	if containsAny(text, c.vocab.MallPhrases) {
		return MallSpecific
	}
	if containsAny(text, c.vocab.GeneralPhrases) {
		return GeneralMarket
	}
	if c.productRelated(text) {
		return AmbiguousProductRelated
	}
	return NotProductRelated
}

// productRelated is true when the text contains a category keyword, a generic
// shopping-intent term, or any segmented token of length ≥ 2 known to the
// global keyword set.
func (c *Classifier) productRelated(text string) bool {
	if containsAny(text, c.vocab.Categories) {
		return true
	}
	if containsAny(text, c.vocab.ShoppingTerms) {
		return true
	}

	for _, token := range c.tok.Segment(text) {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		if c.known != nil && c.known(token) {
			return true
		}
	}
	return false
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
